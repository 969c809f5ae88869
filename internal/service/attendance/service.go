package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine/internal/domain/company"
	"github.com/cmlabs-hris/attendance-engine/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-engine/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/geo"
)

// Options tunes the engine. Zero values fall back to defaults.
type Options struct {
	Shifts      attendance.ShiftConfig
	Location    *time.Location
	DedupWindow time.Duration
	Clock       func() time.Time
}

type AttendanceServiceImpl struct {
	attendance.Transactor
	attendance.RecordRepository
	employee.EmployeeRepository
	leave.LeaveRequestRepository
	settings company.SettingProvider
	notifier attendance.Notifier

	shifts   attendance.ShiftConfig
	resolver *ShiftResolver
	guard    DedupGuard
	location *time.Location
	now      func() time.Time
}

func NewAttendanceService(
	transactor attendance.Transactor,
	recordRepo attendance.RecordRepository,
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.LeaveRequestRepository,
	settings company.SettingProvider,
	notifier attendance.Notifier,
	opts Options,
) attendance.AttendanceService {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.DedupWindow <= 0 {
		opts.DedupWindow = time.Minute
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	return &AttendanceServiceImpl{
		Transactor:             transactor,
		RecordRepository:       recordRepo,
		EmployeeRepository:     employeeRepo,
		LeaveRequestRepository: leaveRepo,
		settings:               settings,
		notifier:               notifier,
		shifts:                 opts.Shifts,
		resolver:               NewShiftResolver(opts.Shifts),
		guard:                  NewDedupGuard(opts.DedupWindow),
		location:               opts.Location,
		now:                    opts.Clock,
	}
}

// Record implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Record(ctx context.Context, req attendance.RecordAttendanceRequest) (attendance.RecordAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordAttendanceResponse{}, err
	}

	now := s.now().In(s.location)
	nowOfDay := attendance.TimeOfDayOf(now)
	date := s.requestDate(req, now)

	emp, err := s.EmployeeRepository.GetByMatri(ctx, req.Matri)
	if err != nil {
		return attendance.RecordAttendanceResponse{}, err
	}
	if !emp.IsActive() {
		return attendance.RecordAttendanceResponse{}, employee.ErrEmployeeInactive
	}

	onLeave, err := s.LeaveRequestRepository.HasApprovedLeaveOn(ctx, emp.ID, date)
	if err != nil {
		return attendance.RecordAttendanceResponse{}, fmt.Errorf("failed to check approved leave: %w", err)
	}
	if onLeave {
		return attendance.RecordAttendanceResponse{}, leave.ErrEmployeeOnLeave
	}

	setting, err := s.settings.Get(ctx)
	if err != nil {
		return attendance.RecordAttendanceResponse{}, err
	}

	position := geo.Point{Latitude: *req.Latitude, Longitude: *req.Longitude}
	fence := geo.Fence{
		Center:       geo.Point{Latitude: setting.Latitude, Longitude: setting.Longitude},
		RadiusMeters: float64(setting.AllowedRadiusMeters),
	}
	inside, distance := fence.Check(position)
	if !inside {
		slog.WarnContext(ctx, "Attendance rejected outside company area",
			"employee_id", emp.ID,
			"matri", emp.Matri,
			"distance", roundTo(distance, 2),
			"allowed_radius", setting.AllowedRadiusMeters,
		)
		s.notifier.OutsideArea(ctx, attendance.OutsideAreaEvent{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			Matri:        emp.Matri,
			Distance:     roundTo(distance, 2),
			Allowed:      setting.AllowedRadiusMeters,
		})
		return attendance.RecordAttendanceResponse{}, &attendance.GeofenceError{
			Distance: distance,
			Allowed:  setting.AllowedRadiusMeters,
		}
	}

	action := req.RequestedAction()
	stamp := nowOfDay.String()

	var (
		period attendance.Period
		saved  attendance.Record
	)
	err = s.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		rec, created, err := s.RecordRepository.LockOrCreate(ctx, emp.ID, date)
		if err != nil {
			return err
		}

		if p, ok := req.RequestedPeriod(); ok {
			period = p
		} else {
			period = s.resolver.Resolve(nowOfDay, &rec, created)
		}
		if period == attendance.PeriodOutOfShift {
			return &attendance.OutOfShiftError{Shifts: s.shifts}
		}
		if action == attendance.ActionCheckIn && !s.resolver.InWindow(period, nowOfDay) {
			return &attendance.ShiftWindowError{Period: period}
		}

		slot := attendance.Slot{Period: period, Action: action}
		block := rec.Period(period)
		punch := block.Punch(action)
		if err := s.guard.Check(ctx, rec.ID, slot, *punch, nowOfDay); err != nil {
			return err
		}

		lat, lng := position.Latitude, position.Longitude
		*punch = attendance.Punch{Time: &stamp, Latitude: &lat, Longitude: &lng}

		window, _ := s.shifts.Window(period)
		status := ClassifyPeriod(action, nowOfDay, window, block.Status)
		block.Status = &status

		rec.Status = SummarizeDaily(rec.Morning.Status, rec.Evening.Status, rec.IsOnLeave)
		rec.WorkHours = ComputeWorkHours(ctx, rec)

		if err := s.RecordRepository.Save(ctx, rec); err != nil {
			return err
		}
		saved = rec
		return nil
	})
	if err != nil {
		return attendance.RecordAttendanceResponse{}, err
	}

	periodStatus := *saved.Period(period).Status
	workHours := saved.WorkHours.InexactFloat64()
	dateStr := date.Format(time.DateOnly)

	slog.InfoContext(ctx, "Attendance recorded",
		"employee_id", emp.ID,
		"employee_name", emp.Name,
		"action", action,
		"period", period,
		"period_status", periodStatus,
		"daily_status", saved.Status,
		"distance", roundTo(distance, 2),
		"time", stamp,
		"date", dateStr,
	)

	s.notifier.AttendanceRecorded(ctx, attendance.RecordedEvent{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Matri:        emp.Matri,
		Date:         dateStr,
		Time:         stamp,
		Period:       period,
		Action:       action,
		PeriodStatus: periodStatus,
		DailyStatus:  saved.Status,
	})

	return attendance.RecordAttendanceResponse{
		Status:       "success",
		Message:      fmt.Sprintf("%s recorded successfully for the %s.", action.Label(), period.Label()),
		Time:         stamp,
		Date:         dateStr,
		Period:       period,
		Action:       action,
		PeriodStatus: periodStatus,
		DailyStatus:  saved.Status,
		WorkHours:    workHours,
		Employee: attendance.EmployeeSummary{
			ID:    emp.ID,
			Name:  emp.Name,
			Matri: emp.Matri,
		},
	}, nil
}

// Report implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Report(ctx context.Context, filter attendance.ReportFilter) (attendance.ReportResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ReportResponse{}, err
	}
	from, to := filter.Range()

	emp, err := s.EmployeeRepository.GetByMatri(ctx, filter.Matri)
	if err != nil {
		return attendance.ReportResponse{}, err
	}

	records, err := s.RecordRepository.ListByEmployee(ctx, emp.ID, from, to)
	if err != nil {
		return attendance.ReportResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	items := make([]attendance.ReportRecord, 0, len(records))
	for _, rec := range records {
		items = append(items, attendance.ReportRecord{
			ID:              rec.ID,
			Date:            rec.Date.Format(time.DateOnly),
			CheckInMorning:  rec.Morning.CheckIn.Time,
			CheckOutMorning: rec.Morning.CheckOut.Time,
			CheckInEvening:  rec.Evening.CheckIn.Time,
			CheckOutEvening: rec.Evening.CheckOut.Time,
			StatusMorning:   rec.Morning.Status,
			StatusEvening:   rec.Evening.Status,
			WorkHours:       rec.WorkHours.InexactFloat64(),
			Status:          rec.Status,
			Notes:           rec.Notes,
		})
	}

	return attendance.ReportResponse{
		Status: "success",
		Employee: attendance.ReportEmployee{
			ID:         emp.ID,
			Name:       emp.Name,
			Matri:      emp.Matri,
			Department: stringOrEmpty(emp.Department),
			Position:   stringOrEmpty(emp.Position),
		},
		Records: items,
	}, nil
}

// requestDate is the client-supplied date or today in the configured zone.
func (s *AttendanceServiceImpl) requestDate(req attendance.RecordAttendanceRequest, now time.Time) time.Time {
	if req.Date != nil && *req.Date != "" {
		if d, err := time.ParseInLocation(time.DateOnly, *req.Date, s.location); err == nil {
			return d
		}
	}
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.location)
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
