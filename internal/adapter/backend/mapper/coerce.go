package mapper

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// now is the fallback clock for missing timestamps.
var now = time.Now

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseAmount coerces a backend monetary field. The backend sends numbers,
// numeric strings or null; anything unparseable counts as zero.
func ParseAmount(raw json.RawMessage) decimal.Decimal {
	if v, ok := parseAmount(raw); ok {
		return v
	}
	return decimal.Zero
}

// ParseOptionalAmount is ParseAmount for optional fields: absent, null, blank or
// unparseable values yield nil.
func ParseOptionalAmount(raw json.RawMessage) *decimal.Decimal {
	if v, ok := parseAmount(raw); ok {
		return &v
	}
	return nil
}

func parseAmount(raw json.RawMessage) (decimal.Decimal, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return decimal.Zero, false
	}
	s := string(raw)
	if raw[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return decimal.Zero, false
		}
		s = strings.TrimSpace(unquoted)
		if s == "" {
			return decimal.Zero, false
		}
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return v, true
}

func nonNegative(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}

// parseTimeOrNow parses a backend timestamp, falling back to the current time.
func parseTimeOrNow(s string) time.Time {
	if t, ok := parseTime(s); ok {
		return t
	}
	return now().UTC()
}

func parseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// JoinName builds a display name from first and last names, collapsing whitespace.
func JoinName(first, last string) string {
	return strings.Join(strings.Fields(first+" "+last), " ")
}

// SplitName splits a full name typed in a form into nombre (first word) and apellidos (the rest).
func SplitName(full string) (nombre, apellidos string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
