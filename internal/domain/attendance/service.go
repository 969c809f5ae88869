package attendance

import (
	"context"
)

// AttendanceService defines the attendance-event engine
type AttendanceService interface {
	// Record validates, deduplicates and classifies a geolocated check request
	Record(ctx context.Context, req RecordAttendanceRequest) (RecordAttendanceResponse, error)

	// Report returns an employee's day records for a date range
	Report(ctx context.Context, filter ReportFilter) (ReportResponse, error)
}
