package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	// HasApprovedLeaveOn reports whether an approved leave request covers date.
	HasApprovedLeaveOn(ctx context.Context, employeeID string, date time.Time) (bool, error)
}
