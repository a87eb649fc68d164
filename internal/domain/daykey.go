package domain

import (
	"database/sql"
	"strings"
	"time"
)

// DayKeyLayout is the format of a calendar day key.
const DayKeyLayout = "2006-01-02"

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	DayKeyLayout,
}

// lazyTimestamp matches stored timestamp wrappers that resolve to a time on demand.
type lazyTimestamp interface {
	Time() time.Time
}

// DayKey maps a timestamp in any of its stored representations to the
// YYYY-MM-DD calendar day it falls on in loc. A nil loc means time.Local.
//
// Supported inputs are time.Time, *time.Time, sql.NullTime, ISO-8601 strings,
// func() time.Time and any value with a Time() time.Time method. Anything else,
// including zero times and unparseable strings, reports false.
func DayKey(value any, loc *time.Location) (string, bool) {
	if loc == nil {
		loc = time.Local
	}
	t, ok := resolveTimestamp(value, loc)
	if !ok || t.IsZero() {
		return "", false
	}
	return t.In(loc).Format(DayKeyLayout), true
}

// DayKeys returns the day keys of every value that resolves, in input order.
func DayKeys(values []any, loc *time.Location) []string {
	keys := make([]string, 0, len(values))
	for _, v := range values {
		if key, ok := DayKey(v, loc); ok {
			keys = append(keys, key)
		}
	}
	return keys
}

// DreamDayKeys buckets each dream's creation time.
func DreamDayKeys(dreams []Dream, loc *time.Location) []string {
	keys := make([]string, 0, len(dreams))
	for _, d := range dreams {
		if key, ok := DayKey(d.CreatedAt, loc); ok {
			keys = append(keys, key)
		}
	}
	return keys
}

func resolveTimestamp(value any, loc *time.Location) (t time.Time, ok bool) {
	defer func() {
		// Lazy wrappers are foreign code; a panicking one is treated as unusable.
		if recover() != nil {
			t, ok = time.Time{}, false
		}
	}()

	switch v := value.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return v, true
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, true
	case sql.NullTime:
		return v.Time, v.Valid
	case *sql.NullTime:
		if v == nil {
			return time.Time{}, false
		}
		return v.Time, v.Valid
	case string:
		return parseTimestamp(v, loc)
	case func() time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return v(), true
	case lazyTimestamp:
		return v.Time(), true
	default:
		return time.Time{}, false
	}
}

func parseTimestamp(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		// Offset-free layouts are wall time in loc.
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
