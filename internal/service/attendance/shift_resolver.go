package attendance

import (
	"github.com/cmlabs-hris/attendance-engine/internal/domain/attendance"
)

// ShiftResolver maps a wall-clock time to the period a request belongs to.
type ShiftResolver struct {
	shifts attendance.ShiftConfig
}

func NewShiftResolver(shifts attendance.ShiftConfig) *ShiftResolver {
	return &ShiftResolver{shifts: shifts}
}

// InWindow reports whether now lies in [start-grace, end+grace] of period p.
func (r *ShiftResolver) InWindow(p attendance.Period, now attendance.TimeOfDay) bool {
	w, ok := r.shifts.Window(p)
	if !ok {
		return false
	}
	return now >= w.Start.Add(-r.shifts.GracePeriod) && now <= w.End.Add(r.shifts.GracePeriod)
}

// Resolve picks the period for now. Outside every window only an existing
// record with an open period (checked in, not out) resolves, so a late
// checkout can still close it; evening wins when both are open.
func (r *ShiftResolver) Resolve(now attendance.TimeOfDay, rec *attendance.Record, created bool) attendance.Period {
	for _, p := range attendance.Periods {
		if r.InWindow(p, now) {
			return p
		}
	}

	if created || rec == nil {
		return attendance.PeriodOutOfShift
	}

	switch {
	case rec.Evening.Open():
		return attendance.PeriodEvening
	case rec.Morning.Open():
		return attendance.PeriodMorning
	default:
		return attendance.PeriodOutOfShift
	}
}
