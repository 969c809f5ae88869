package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine/internal/domain/company"
	"github.com/cmlabs-hris/attendance-engine/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-engine/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHandleError_StatusCodes(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{employee.ErrEmployeeNotFound, http.StatusNotFound},
		{employee.ErrEmployeeInactive, http.StatusForbidden},
		{&attendance.GeofenceError{Distance: 5003.77, Allowed: 200}, http.StatusForbidden},
		{leave.ErrEmployeeOnLeave, http.StatusBadRequest},
		{&attendance.OutOfShiftError{}, http.StatusBadRequest},
		{&attendance.ShiftWindowError{Period: attendance.PeriodMorning}, http.StatusBadRequest},
		{&attendance.AlreadyRecordedError{Slot: attendance.Slot{Period: attendance.PeriodMorning, Action: attendance.ActionCheckIn}}, http.StatusBadRequest},
		{attendance.ErrTooSoon, http.StatusTooManyRequests},
		{fmt.Errorf("wrapped: %w", attendance.ErrTooSoon), http.StatusTooManyRequests},
		{company.ErrSettingNotConfigured, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		rec := httptest.NewRecorder()
		HandleError(rec, c.err)

		assert.Equal(t, c.code, rec.Code, "%v", c.err)
		assert.Equal(t, StatusError, decode(t, rec).Status)
	}
}

func TestHandleError_GeofenceMessageCarriesDistance(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, &attendance.GeofenceError{Distance: 5003.77, Allowed: 200})

	assert.Equal(t, "you are outside the company area (distance: 5004m)", decode(t, rec).Message)
}

func TestHandleError_ValidationErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{{Field: "latitude", Message: "latitude is required"}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "latitude is required", body.Errors["latitude"])
}

func TestHandleError_ErrorDetailToggle(t *testing.T) {
	t.Cleanup(func() { SetExposeErrorDetail(false) })

	SetExposeErrorDetail(false)
	rec := httptest.NewRecorder()
	HandleError(rec, errors.New("connection reset"))
	assert.Empty(t, decode(t, rec).ErrorDetail)

	SetExposeErrorDetail(true)
	rec = httptest.NewRecorder()
	HandleError(rec, errors.New("connection reset"))
	assert.Equal(t, "connection reset", decode(t, rec).ErrorDetail)
}
