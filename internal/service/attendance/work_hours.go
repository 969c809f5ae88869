package attendance

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

var minutesPerHour = decimal.NewFromInt(60)

// ComputeWorkHours sums the whole minutes of every completed period and
// returns hours rounded to two decimals. Periods with an unparseable or
// reversed pair contribute nothing.
func ComputeWorkHours(ctx context.Context, rec attendance.Record) decimal.Decimal {
	var minutes int64

	for _, p := range attendance.Periods {
		pr := rec.Period(p)
		in := attendance.ParseStoredTime(pr.CheckIn.Time)
		out := attendance.ParseStoredTime(pr.CheckOut.Time)

		if in.State == attendance.TimeAbsent || out.State == attendance.TimeAbsent {
			continue
		}
		if in.State == attendance.TimeInvalid || out.State == attendance.TimeInvalid {
			slog.WarnContext(ctx, "Skipping period with unparseable times in work hours",
				"record_id", rec.ID,
				"period", p,
				"check_in", in.Raw,
				"check_out", out.Raw,
			)
			continue
		}

		worked := out.Value.Sub(in.Value)
		// Reversed pairs come from edited data; they count as zero rather
		// than the absolute difference.
		if worked < 0 {
			slog.WarnContext(ctx, "Skipping period with check-out before check-in",
				"record_id", rec.ID,
				"period", p,
				"check_in", in.Raw,
				"check_out", out.Raw,
			)
			continue
		}
		minutes += int64(worked / time.Minute)
	}

	return decimal.NewFromInt(minutes).Div(minutesPerHour).Round(2)
}
