package notification

import (
	"context"
	"log/slog"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/sse"
)

// TopicAttendance carries the live attendance feed for monitors.
const TopicAttendance = "attendance"

const (
	EventAttendanceRecorded = "attendance.recorded"
	EventOutsideArea        = "attendance.outside_area"
)

// SSENotifier publishes engine events to the in-process SSE hub.
type SSENotifier struct {
	hub *sse.Hub
}

func NewSSENotifier(hub *sse.Hub) attendance.Notifier {
	return &SSENotifier{hub: hub}
}

// AttendanceRecorded implements attendance.Notifier.
func (n *SSENotifier) AttendanceRecorded(ctx context.Context, event attendance.RecordedEvent) {
	delivered := n.hub.Publish(TopicAttendance, sse.Event{Event: EventAttendanceRecorded, Data: event})
	slog.DebugContext(ctx, "Attendance event published", "event", EventAttendanceRecorded, "subscribers", delivered)
}

// OutsideArea implements attendance.Notifier.
func (n *SSENotifier) OutsideArea(ctx context.Context, event attendance.OutsideAreaEvent) {
	delivered := n.hub.Publish(TopicAttendance, sse.Event{Event: EventOutsideArea, Data: event})
	slog.DebugContext(ctx, "Attendance event published", "event", EventOutsideArea, "subscribers", delivered)
}
