package attendance

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Period is one of the two daily work shifts.
type Period string

const (
	PeriodMorning    Period = "morning"
	PeriodEvening    Period = "evening"
	PeriodOutOfShift Period = "out_of_shift"
)

// Periods lists the schedulable periods in resolution order.
var Periods = []Period{PeriodMorning, PeriodEvening}

func (p Period) Label() string {
	switch p {
	case PeriodMorning:
		return "morning period"
	case PeriodEvening:
		return "evening period"
	default:
		return string(p)
	}
}

type Action string

const (
	ActionCheckIn  Action = "check_in"
	ActionCheckOut Action = "check_out"
)

func (a Action) Label() string {
	switch a {
	case ActionCheckIn:
		return "Check-in"
	case ActionCheckOut:
		return "Check-out"
	default:
		return string(a)
	}
}

type PeriodStatus string

const (
	PeriodStatusPresent   PeriodStatus = "present"
	PeriodStatusLate      PeriodStatus = "late"
	PeriodStatusLeftEarly PeriodStatus = "left_early"
)

type DailyStatus string

const (
	DailyStatusAbsent    DailyStatus = "absent"
	DailyStatusPresent   DailyStatus = "present"
	DailyStatusLate      DailyStatus = "late"
	DailyStatusLeftEarly DailyStatus = "left_early"
	DailyStatusLeave     DailyStatus = "leave"
)

// Punch is a single stored check-in or check-out. Time holds the raw
// stored HH:MM:SS value so corrupted data can be detected on read.
type Punch struct {
	Time      *string
	Latitude  *float64
	Longitude *float64
}

func (p Punch) Filled() bool {
	return p.Time != nil && *p.Time != ""
}

type PeriodRecord struct {
	CheckIn  Punch
	CheckOut Punch
	Status   *PeriodStatus
}

// Punch returns the slot for the given action.
func (pr *PeriodRecord) Punch(action Action) *Punch {
	if action == ActionCheckOut {
		return &pr.CheckOut
	}
	return &pr.CheckIn
}

// Open reports whether the period has a check-in without a check-out.
func (pr PeriodRecord) Open() bool {
	return pr.CheckIn.Filled() && !pr.CheckOut.Filled()
}

// Record is the single attendance row of one employee for one calendar date.
type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Morning    PeriodRecord
	Evening    PeriodRecord
	Status     DailyStatus
	WorkHours  decimal.Decimal
	IsOnLeave  bool
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Period returns the per-period block for p, or nil for out_of_shift.
func (r *Record) Period(p Period) *PeriodRecord {
	switch p {
	case PeriodMorning:
		return &r.Morning
	case PeriodEvening:
		return &r.Evening
	default:
		return nil
	}
}

// Slot identifies one writable (period, action) cell of a record.
type Slot struct {
	Period Period
	Action Action
}

func (s Slot) String() string {
	return fmt.Sprintf("%s_%s", s.Action, s.Period)
}

// ShiftWindow is the configured timetable of a single period.
type ShiftWindow struct {
	Start            TimeOfDay
	End              TimeOfDay
	LateAfter        TimeOfDay
	EarlyLeaveBefore TimeOfDay
}

// ShiftConfig holds the static timetable for both periods.
type ShiftConfig struct {
	Morning     ShiftWindow
	Evening     ShiftWindow
	GracePeriod time.Duration
}

func (c ShiftConfig) Window(p Period) (ShiftWindow, bool) {
	switch p {
	case PeriodMorning:
		return c.Morning, true
	case PeriodEvening:
		return c.Evening, true
	default:
		return ShiftWindow{}, false
	}
}

func (c ShiftConfig) Validate() error {
	if c.GracePeriod < 0 {
		return fmt.Errorf("grace period must not be negative")
	}
	for _, p := range Periods {
		w, _ := c.Window(p)
		if w.Start >= w.End {
			return fmt.Errorf("%s shift start %s must be before end %s", p, w.Start, w.End)
		}
	}
	if c.Morning.End > c.Evening.Start {
		return fmt.Errorf("morning shift must end before evening shift starts")
	}
	return nil
}

// EmployeeSummary is the subset of employee data echoed back to the client.
type EmployeeSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Matri string `json:"matri"`
}

// RecordedEvent is emitted after a check request commits.
type RecordedEvent struct {
	EmployeeID   string       `json:"employee_id"`
	EmployeeName string       `json:"employee_name"`
	Matri        string       `json:"matri"`
	Date         string       `json:"date"`
	Time         string       `json:"time"`
	Period       Period       `json:"period"`
	Action       Action       `json:"action"`
	PeriodStatus PeriodStatus `json:"period_status"`
	DailyStatus  DailyStatus  `json:"daily_status"`
}

// OutsideAreaEvent is emitted when a check request is rejected by the geofence.
type OutsideAreaEvent struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Matri        string  `json:"matri"`
	Distance     float64 `json:"distance"`
	Allowed      int     `json:"allowed_radius"`
}
