// Package format holds the pure input formatters used by the intake flow:
// phone masking, ticket number generation and receipt timestamp composition.
package format

import (
	"fmt"
	"strings"
	"time"
)

const maxPhoneDigits = 11

// DigitsOnly strips every non-digit rune from raw.
func DigitsOnly(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhone applies the progressive display mask to a raw phone input.
// The mask never adds or removes digits; anything past 11 digits is dropped.
//
//	""            -> ""
//	"81"          -> "(81"
//	"819999"      -> "(81) 9999"
//	"8199991111"  -> "(81) 9999-1111"
//	"81999991111" -> "(81) 99999-1111"
func FormatPhone(raw string) string {
	digits := DigitsOnly(raw)
	if digits == "" {
		return ""
	}
	if len(digits) > maxPhoneDigits {
		digits = digits[:maxPhoneDigits]
	}
	if len(digits) <= 2 {
		return "(" + digits
	}

	ddd := digits[:2]
	rest := digits[2:]
	if len(rest) <= 4 {
		return fmt.Sprintf("(%s) %s", ddd, rest)
	}
	return fmt.Sprintf("(%s) %s-%s", ddd, rest[:len(rest)-4], rest[len(rest)-4:])
}

// GenerateTicketNumber derives a human-facing ticket number from the clock:
// the 4-digit year followed by the last 9 digits of the unix-millisecond
// counter. Unique only if no two calls land on the same millisecond in the
// same process; the storage layer owns the real uniqueness constraint.
func GenerateTicketNumber(now time.Time) string {
	return fmt.Sprintf("%04d%09d", now.Year(), now.UnixMilli()%1_000_000_000)
}

// ComposeTimestamp combines a calendar date ("2006-01-02") and a time of day
// ("15:04" or "15:04:05") into a single UTC instant. When either part is
// missing or unparsable it falls back to now and reports ok=false so the
// caller can record the data-quality event.
func ComposeTimestamp(date, timeOfDay string, now time.Time) (t time.Time, ok bool) {
	if date == "" || timeOfDay == "" {
		return now.UTC(), false
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if parsed, err := time.Parse(layout, date+"T"+timeOfDay); err == nil {
			return parsed.UTC(), true
		}
	}
	return now.UTC(), false
}
