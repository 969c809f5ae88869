package postgresql

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.RecordRepository {
	return &attendanceRepository{db: db}
}

// Times are read as text so a corrupted value surfaces in the engine
// instead of failing the scan.
const selectRecordColumns = `
	SELECT id, employee_id, date,
		   check_in_morning::text, check_in_morning_lat::float8, check_in_morning_lng::float8,
		   check_out_morning::text, check_out_morning_lat::float8, check_out_morning_lng::float8,
		   status_morning,
		   check_in_evening::text, check_in_evening_lat::float8, check_in_evening_lng::float8,
		   check_out_evening::text, check_out_evening_lat::float8, check_out_evening_lng::float8,
		   status_evening,
		   status, work_hours::text, is_on_leave, notes,
		   created_at, updated_at
	FROM attendance_records
`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row rowScanner) (attendance.Record, error) {
	var (
		rec                          attendance.Record
		statusMorning, statusEvening *string
		status, workHours            string
	)

	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date,
		&rec.Morning.CheckIn.Time, &rec.Morning.CheckIn.Latitude, &rec.Morning.CheckIn.Longitude,
		&rec.Morning.CheckOut.Time, &rec.Morning.CheckOut.Latitude, &rec.Morning.CheckOut.Longitude,
		&statusMorning,
		&rec.Evening.CheckIn.Time, &rec.Evening.CheckIn.Latitude, &rec.Evening.CheckIn.Longitude,
		&rec.Evening.CheckOut.Time, &rec.Evening.CheckOut.Latitude, &rec.Evening.CheckOut.Longitude,
		&statusEvening,
		&status, &workHours, &rec.IsOnLeave, &rec.Notes,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return attendance.Record{}, err
	}

	rec.Morning.Status = toPeriodStatus(statusMorning)
	rec.Evening.Status = toPeriodStatus(statusEvening)
	rec.Status = attendance.DailyStatus(status)

	rec.WorkHours, err = decimal.NewFromString(workHours)
	if err != nil {
		slog.Warn("Unparseable work_hours, treating as zero", "record_id", rec.ID, "raw", workHours)
		rec.WorkHours = decimal.Zero
	}

	return rec, nil
}

func toPeriodStatus(s *string) *attendance.PeriodStatus {
	if s == nil {
		return nil
	}
	ps := attendance.PeriodStatus(*s)
	return &ps
}

func fromPeriodStatus(ps *attendance.PeriodStatus) *string {
	if ps == nil {
		return nil
	}
	s := string(*ps)
	return &s
}

// LockOrCreate implements attendance.RecordRepository.
func (a *attendanceRepository) LockOrCreate(ctx context.Context, employeeID string, date time.Time) (attendance.Record, bool, error) {
	q := GetQuerier(ctx, a.db)
	day := date.Format(time.DateOnly)

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.Record{}, false, fmt.Errorf("failed to generate attendance id: %w", err)
	}

	// Racing first requests serialize on the (employee_id, date) unique index.
	insert := `
		INSERT INTO attendance_records (id, employee_id, date, status)
		VALUES ($1, $2, $3::date, 'absent')
		ON CONFLICT (employee_id, date) DO NOTHING
	`
	tag, err := q.Exec(ctx, insert, id.String(), employeeID, day)
	if err != nil {
		return attendance.Record{}, false, fmt.Errorf("failed to create attendance record: %w", err)
	}
	created := tag.RowsAffected() == 1

	query := selectRecordColumns + `
		WHERE employee_id = $1 AND date = $2::date
		FOR UPDATE
	`
	rec, err := scanRecord(q.QueryRow(ctx, query, employeeID, day))
	if err != nil {
		return attendance.Record{}, false, fmt.Errorf("failed to lock attendance record for employee %s on %s: %w", employeeID, day, err)
	}

	return rec, created, nil
}

// Save implements attendance.RecordRepository.
func (a *attendanceRepository) Save(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records SET
			check_in_morning = $2::time, check_in_morning_lat = $3, check_in_morning_lng = $4,
			check_out_morning = $5::time, check_out_morning_lat = $6, check_out_morning_lng = $7,
			status_morning = $8,
			check_in_evening = $9::time, check_in_evening_lat = $10, check_in_evening_lng = $11,
			check_out_evening = $12::time, check_out_evening_lat = $13, check_out_evening_lng = $14,
			status_evening = $15,
			status = $16, work_hours = $17::numeric, is_on_leave = $18, notes = $19,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		rec.ID,
		rec.Morning.CheckIn.Time, rec.Morning.CheckIn.Latitude, rec.Morning.CheckIn.Longitude,
		rec.Morning.CheckOut.Time, rec.Morning.CheckOut.Latitude, rec.Morning.CheckOut.Longitude,
		fromPeriodStatus(rec.Morning.Status),
		rec.Evening.CheckIn.Time, rec.Evening.CheckIn.Latitude, rec.Evening.CheckIn.Longitude,
		rec.Evening.CheckOut.Time, rec.Evening.CheckOut.Latitude, rec.Evening.CheckOut.Longitude,
		fromPeriodStatus(rec.Evening.Status),
		string(rec.Status), rec.WorkHours.StringFixed(2), rec.IsOnLeave, rec.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to save attendance record %s: %w", rec.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("attendance record %s not found", rec.ID)
	}

	return nil
}

// ListByEmployee implements attendance.RecordRepository.
func (a *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := selectRecordColumns + `
		WHERE employee_id = $1
		  AND date BETWEEN $2::date AND $3::date
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from.Format(time.DateOnly), to.Format(time.DateOnly))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	records := make([]attendance.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, nil
}
