package attendance

import (
	"errors"
	"fmt"
	"math"
)

// Attendance domain errors
var (
	// Geofence
	ErrOutsideAllowedRadius = errors.New("you are outside the allowed radius")

	// Temporal
	ErrOutOfShift         = errors.New("current time is outside the configured work periods")
	ErrOutsideShiftWindow = errors.New("cannot check in for this period at this time")

	// Idempotency
	ErrTooSoon         = errors.New("recorded recently, please wait a minute")
	ErrAlreadyRecorded = errors.New("already recorded for this period")

	// Report
	ErrInvalidDateRange = errors.New("from date must not be after to date")
)

// GeofenceError carries the measured distance of a rejected position.
type GeofenceError struct {
	Distance float64
	Allowed  int
}

func (e *GeofenceError) Error() string {
	return fmt.Sprintf("you are outside the company area (distance: %.0fm)", math.Round(e.Distance))
}

func (e *GeofenceError) Is(target error) bool {
	return target == ErrOutsideAllowedRadius
}

// OutOfShiftError lists the configured windows so the client can retry in time.
type OutOfShiftError struct {
	Shifts ShiftConfig
}

func (e *OutOfShiftError) Error() string {
	return fmt.Sprintf("current time is outside the configured work periods. Working hours: morning (%s - %s), evening (%s - %s)",
		e.Shifts.Morning.Start.HourMinute(), e.Shifts.Morning.End.HourMinute(),
		e.Shifts.Evening.Start.HourMinute(), e.Shifts.Evening.End.HourMinute(),
	)
}

func (e *OutOfShiftError) Is(target error) bool {
	return target == ErrOutOfShift
}

type ShiftWindowError struct {
	Period Period
}

func (e *ShiftWindowError) Error() string {
	return fmt.Sprintf("cannot check in for the %s at this time", e.Period.Label())
}

func (e *ShiftWindowError) Is(target error) bool {
	return target == ErrOutsideShiftWindow
}

type AlreadyRecordedError struct {
	Slot Slot
}

func (e *AlreadyRecordedError) Error() string {
	return fmt.Sprintf("%s for the %s has already been recorded", e.Slot.Action.Label(), e.Slot.Period.Label())
}

func (e *AlreadyRecordedError) Is(target error) bool {
	return target == ErrAlreadyRecorded
}
