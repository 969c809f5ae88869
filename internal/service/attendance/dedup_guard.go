package attendance

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/attendance"
)

// DedupGuard rejects writes to a slot that already holds a value.
type DedupGuard struct {
	window time.Duration
}

func NewDedupGuard(window time.Duration) DedupGuard {
	return DedupGuard{window: window}
}

// Check returns nil when the slot is empty. A filled slot yields ErrTooSoon
// while now is within the window of the stored time, otherwise an
// AlreadyRecordedError. A corrupted stored value is never overwritten.
func (g DedupGuard) Check(ctx context.Context, recordID string, slot attendance.Slot, punch attendance.Punch, now attendance.TimeOfDay) error {
	stored := attendance.ParseStoredTime(punch.Time)

	switch stored.State {
	case attendance.TimeAbsent:
		return nil
	case attendance.TimeInvalid:
		slog.WarnContext(ctx, "Corrupted stored attendance time",
			"record_id", recordID,
			"slot", slot.String(),
			"raw", stored.Raw,
		)
		return &attendance.AlreadyRecordedError{Slot: slot}
	}

	elapsed := now.Sub(stored.Value)
	if elapsed < 0 {
		elapsed = -elapsed
	}
	if elapsed < g.window {
		return attendance.ErrTooSoon
	}

	return &attendance.AlreadyRecordedError{Slot: slot}
}
