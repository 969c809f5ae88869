package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-engine/internal/domain/company"
	"github.com/cmlabs-hris/attendance-engine/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-engine/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-engine/internal/domain/user"
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee account is not active")

	// Leave domain errors
	case errors.Is(err, leave.ErrEmployeeOnLeave):
		BadRequest(w, "Employee is on approved leave today")

	// Attendance domain errors; messages carry the typed error's detail
	case errors.Is(err, attendance.ErrOutsideAllowedRadius):
		Forbidden(w, err.Error())
	case errors.Is(err, attendance.ErrOutOfShift),
		errors.Is(err, attendance.ErrOutsideShiftWindow),
		errors.Is(err, attendance.ErrAlreadyRecorded),
		errors.Is(err, attendance.ErrInvalidDateRange):
		BadRequest(w, err.Error())
	case errors.Is(err, attendance.ErrTooSoon):
		TooManyRequests(w, "Recorded recently, please wait a minute")

	// Company setting errors
	case errors.Is(err, company.ErrSettingNotConfigured):
		InternalServerError(w, "Company settings are not configured", nil)

	// Default
	default:
		slog.Error("Unhandled request error", "error", err)
		InternalServerError(w, "An error occurred while processing the request", err)
	}
}
