package entry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"tableflip.dev/diary/pkg/timeutil"
)

// ParseTime accepts RFC3339 with or without fractional seconds.
func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Timestamp is encoded as unix milliseconds, the format used by exported
// documents. Decoding also accepts an RFC3339 string.
type Timestamp struct {
	time.Time
}

// At truncates t to millisecond precision so a value survives a JSON round trip.
func At(t time.Time) Timestamp {
	return Timestamp{Time: t.Truncate(time.Millisecond)}
}

func (t Timestamp) SameDay(then time.Time) bool {
	return timeutil.SameDay(t.Local(), then.Local())
}

func (t Timestamp) SameMonth(then time.Time) bool {
	return timeutil.MonthKey(t.Local()) == timeutil.MonthKey(then.Local())
}

// Millis returns the unix millisecond value, 0 for the zero time.
func (t Timestamp) Millis() int64 {
	if t.IsZero() {
		return 0
	}
	return timeutil.Millis(t.Time)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(t.Millis(), 10)), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			t.Time = time.Time{}
			return nil
		}
		parsed, err := ParseTime(s)
		if err != nil {
			return err
		}
		t.Time = parsed
		return nil
	}
	var ms float64
	if err := json.Unmarshal(b, &ms); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	if ms == 0 {
		t.Time = time.Time{}
		return nil
	}
	// float64(math.MaxInt64) rounds up to 2^63, hence >=.
	if math.IsNaN(ms) || math.IsInf(ms, 0) || ms < math.MinInt64 || ms >= math.MaxInt64 {
		return fmt.Errorf("timestamp: %v out of range", ms)
	}
	t.Time = timeutil.FromMillis(int64(ms))
	return nil
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339)
}

// FormatTime renders v in the export date format.
func FormatTime(v time.Time) string {
	return v.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
