package attendance

import (
	"context"
	"time"
)

// RecordRepository defines data access for per-day attendance records.
type RecordRepository interface {
	// LockOrCreate returns the (employee, date) record holding an exclusive
	// row lock, inserting an absent-status row first when none exists.
	// created reports whether this call inserted the row.
	// Must run inside Transactor.WithinTransaction.
	LockOrCreate(ctx context.Context, employeeID string, date time.Time) (record Record, created bool, err error)

	// Save writes every mutable column of the record.
	Save(ctx context.Context, record Record) error

	// ListByEmployee returns records in [from, to] ordered by date ascending.
	ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]Record, error)
}

// Transactor runs fn in a transaction carried by the ctx passed to fn.
// A non-nil error from fn rolls the transaction back.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier receives best-effort attendance events. Implementations must not block.
type Notifier interface {
	AttendanceRecorded(ctx context.Context, event RecordedEvent)
	OutsideArea(ctx context.Context, event OutsideAreaEvent)
}
