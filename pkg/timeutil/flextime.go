package timeutil

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// FlexTime holds a timestamp exactly as it appeared in the legacy document
// store. Imported rows carry at least three shapes:
//   - an instant string (RFC3339, RFC3339Nano, or bare "2006-01-02")
//   - the old store's native object {"seconds": N}
//   - a bare epoch number (seconds, or milliseconds when > 1e12)
//
// Resolve applies them in that precedence: instant conversion first, then
// seconds*1000 ms since epoch, otherwise the timestamp is absent. Absent
// values must be skipped in time-bucketed sums but still counted in
// unconditional totals; callers own that asymmetry.
type FlexTime struct {
	raw json.RawMessage
}

// secondsObj mirrors the legacy store's timestamp document.
type secondsObj struct {
	Seconds     *int64 `json:"seconds"`
	Nanoseconds int64  `json:"nanoseconds"`
}

func FromTime(t time.Time) FlexTime {
	b, _ := json.Marshal(t.UTC().Format(time.RFC3339Nano))
	return FlexTime{raw: b}
}

func FromSeconds(sec int64) FlexTime {
	b, _ := json.Marshal(secondsObj{Seconds: &sec})
	return FlexTime{raw: b}
}

func (f FlexTime) IsZero() bool {
	return len(f.raw) == 0 || string(f.raw) == "null"
}

// Resolve normalizes the stored value to a UTC instant. ok is false when no
// shape matches; malformed input is treated as absent, never an error.
func (f FlexTime) Resolve() (time.Time, bool) {
	if f.IsZero() {
		return time.Time{}, false
	}

	var s string
	if err := json.Unmarshal(f.raw, &s); err == nil {
		return parseInstant(s)
	}

	var obj secondsObj
	if err := json.Unmarshal(f.raw, &obj); err == nil && obj.Seconds != nil {
		return time.UnixMilli(*obj.Seconds * 1000).UTC(), true
	}

	var n int64
	if err := json.Unmarshal(f.raw, &n); err == nil {
		if n > 1e12 { // ms
			return time.UnixMilli(n).UTC(), true
		}
		return time.Unix(n, 0).UTC(), true
	}

	return time.Time{}, false
}

// ParseDate parses the instant strings accepted by Resolve (RFC3339 or bare
// date).
func ParseDate(s string) (time.Time, bool) { return parseInstant(s) }

func parseInstant(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func (f FlexTime) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte("null"), nil
	}
	return f.raw, nil
}

func (f *FlexTime) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		f.raw = nil
		return nil
	}
	f.raw = append(f.raw[:0], b...)
	return nil
}

// Value stores the raw JSON text so round-trips preserve the original shape.
func (f FlexTime) Value() (driver.Value, error) {
	if f.IsZero() {
		return nil, nil
	}
	return string(f.raw), nil
}

func (f *FlexTime) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		f.raw = nil
		return nil
	case []byte:
		f.raw = append([]byte(nil), v...)
		return nil
	case string:
		f.raw = []byte(v)
		return nil
	case time.Time:
		*f = FromTime(v)
		return nil
	default:
		return fmt.Errorf("timeutil: cannot scan %T into FlexTime", src)
	}
}

// GormDataType keeps the column a plain text blob across dialects.
func (FlexTime) GormDataType() string { return "text" }
