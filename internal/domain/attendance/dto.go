package attendance

import (
	"time"

	"github.com/cmlabs-hris/attendance-engine/internal/pkg/validator"
)

// ========================================
// RECORD DTOs
// ========================================

type RecordAttendanceRequest struct {
	Matri     string   `json:"matri"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Type      *string  `json:"type,omitempty"`   // morning, evening
	Action    *string  `json:"action,omitempty"` // check_in, check_out
	Date      *string  `json:"date,omitempty"`   // YYYY-MM-DD
}

func (r *RecordAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Matri) {
		errs = append(errs, validator.ValidationError{
			Field:   "matri",
			Message: "matri is required",
		})
	} else if !validator.IsValidMatri(r.Matri) {
		errs = append(errs, validator.ValidationError{
			Field:   "matri",
			Message: "matri must not exceed 20 characters",
		})
	}

	if r.Latitude == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude is required",
		})
	} else if !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude is required",
		})
	} else if !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.Type != nil && !validator.IsInSlice(*r.Type, []string{string(PeriodMorning), string(PeriodEvening)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: morning, evening",
		})
	}

	if r.Action != nil && !validator.IsInSlice(*r.Action, []string{string(ActionCheckIn), string(ActionCheckOut)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be one of: check_in, check_out",
		})
	}

	if r.Date != nil && *r.Date != "" {
		if _, valid := validator.IsValidDate(*r.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RequestedPeriod returns the client-chosen period, if any.
func (r *RecordAttendanceRequest) RequestedPeriod() (Period, bool) {
	if r.Type == nil || *r.Type == "" {
		return "", false
	}
	return Period(*r.Type), true
}

// RequestedAction defaults to check_in.
func (r *RecordAttendanceRequest) RequestedAction() Action {
	if r.Action == nil || *r.Action == "" {
		return ActionCheckIn
	}
	return Action(*r.Action)
}

type RecordAttendanceResponse struct {
	Status       string          `json:"status"`
	Message      string          `json:"message"`
	Time         string          `json:"time"`
	Date         string          `json:"date"`
	Period       Period          `json:"period"`
	Action       Action          `json:"action"`
	PeriodStatus PeriodStatus    `json:"period_status"`
	DailyStatus  DailyStatus     `json:"daily_status"`
	WorkHours    float64         `json:"work_hours"`
	Employee     EmployeeSummary `json:"employee"`
}

// ========================================
// REPORT DTOs
// ========================================

type ReportFilter struct {
	Matri string `json:"matri"`
	From  string `json:"from"` // YYYY-MM-DD
	To    string `json:"to"`   // YYYY-MM-DD
}

func (f *ReportFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.Matri) {
		errs = append(errs, validator.ValidationError{
			Field:   "matri",
			Message: "matri is required",
		})
	}

	from, fromValid := validator.IsValidDate(f.From)
	if !fromValid {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be in YYYY-MM-DD format",
		})
	}

	to, toValid := validator.IsValidDate(f.To)
	if !toValid {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be in YYYY-MM-DD format",
		})
	}

	if fromValid && toValid && from.After(to) {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: ErrInvalidDateRange.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Range returns the parsed bounds; call after Validate.
func (f *ReportFilter) Range() (time.Time, time.Time) {
	from, _ := validator.IsValidDate(f.From)
	to, _ := validator.IsValidDate(f.To)
	return from, to
}

type ReportEmployee struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Matri      string `json:"matri"`
	Department string `json:"department"`
	Position   string `json:"position"`
}

type ReportRecord struct {
	ID              string        `json:"id"`
	Date            string        `json:"date"`
	CheckInMorning  *string       `json:"check_in_morning"`
	CheckOutMorning *string       `json:"check_out_morning"`
	CheckInEvening  *string       `json:"check_in_evening"`
	CheckOutEvening *string       `json:"check_out_evening"`
	StatusMorning   *PeriodStatus `json:"status_morning"`
	StatusEvening   *PeriodStatus `json:"status_evening"`
	WorkHours       float64       `json:"work_hours"`
	Status          DailyStatus   `json:"status"`
	Notes           string        `json:"notes"`
}

type ReportResponse struct {
	Status   string         `json:"status"`
	Employee ReportEmployee `json:"employee"`
	Records  []ReportRecord `json:"records"`
}
