package attendance

import (
	"fmt"
	"strings"
	"time"
)

// TimeOfDay is an offset from local midnight with second precision.
type TimeOfDay time.Duration

// ParseTimeOfDay accepts "HH:MM" or "HH:MM:SS".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	layout := "15:04:05"
	if strings.Count(s, ":") == 1 {
		layout = "15:04"
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return TimeOfDayOf(t), nil
}

// TimeOfDayOf returns the wall-clock position of t in its own location.
func TimeOfDayOf(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	return TimeOfDay(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second)
}

func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	return t + TimeOfDay(d)
}

func (t TimeOfDay) Sub(u TimeOfDay) time.Duration {
	return time.Duration(t - u)
}

func (t TimeOfDay) String() string {
	d := time.Duration(t)
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, s)
}

// HourMinute formats t as HH:MM for messages.
func (t TimeOfDay) HourMinute() string {
	return t.String()[:5]
}

// TimeState classifies a stored slot value.
type TimeState int

const (
	TimeAbsent TimeState = iota
	TimeInvalid
	TimeValid
)

// StoredTime is the parse result of a raw slot value read from storage.
type StoredTime struct {
	State TimeState
	Value TimeOfDay
	Raw   string
}

// ParseStoredTime never fails: unparseable input yields TimeInvalid.
func ParseStoredTime(raw *string) StoredTime {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return StoredTime{State: TimeAbsent}
	}
	v, err := ParseTimeOfDay(*raw)
	if err != nil {
		return StoredTime{State: TimeInvalid, Raw: *raw}
	}
	return StoredTime{State: TimeValid, Value: v, Raw: *raw}
}
