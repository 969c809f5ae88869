package attendance

import (
	"github.com/cmlabs-hris/attendance-engine/internal/domain/attendance"
)

// ClassifyPeriod returns the period status after action at now.
// A check-out only ever downgrades to left_early; otherwise the previous
// status is kept, defaulting to present.
func ClassifyPeriod(action attendance.Action, now attendance.TimeOfDay, window attendance.ShiftWindow, previous *attendance.PeriodStatus) attendance.PeriodStatus {
	if action == attendance.ActionCheckIn {
		if now > window.LateAfter {
			return attendance.PeriodStatusLate
		}
		return attendance.PeriodStatusPresent
	}

	if now < window.EarlyLeaveBefore {
		return attendance.PeriodStatusLeftEarly
	}
	if previous != nil {
		return *previous
	}
	return attendance.PeriodStatusPresent
}

// SummarizeDaily folds both period statuses into the day's status.
// First match wins: absent, leave, late, left_early, present.
func SummarizeDaily(morning, evening *attendance.PeriodStatus, isOnLeave bool) attendance.DailyStatus {
	if morning == nil && evening == nil {
		return attendance.DailyStatusAbsent
	}
	if isOnLeave {
		return attendance.DailyStatusLeave
	}

	has := func(s attendance.PeriodStatus) bool {
		return (morning != nil && *morning == s) || (evening != nil && *evening == s)
	}

	switch {
	case has(attendance.PeriodStatusLate):
		return attendance.DailyStatusLate
	case has(attendance.PeriodStatusLeftEarly):
		return attendance.DailyStatusLeftEarly
	default:
		return attendance.DailyStatusPresent
	}
}
