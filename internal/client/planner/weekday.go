// Package planner turns weekday choices into concrete meal-plan dates and
// attaches recipes to the user's active plan.
package planner

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format of meal entry days and plan bounds.
const DateLayout = "2006-01-02"

var ErrUnknownWeekday = errors.New("unknown weekday")

// ParseWeekday accepts full English weekday names in any case.
func ParseWeekday(name string) (time.Weekday, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == n {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWeekday, name)
}

// NextOccurrence returns the soonest date on or after today that falls on
// day: today itself when it already is that weekday, otherwise within the
// next six days. The result is midnight in today's location.
func NextOccurrence(day time.Weekday, today time.Time) time.Time {
	offset := int(day) - int(today.Weekday())
	if offset < 0 {
		offset += 7
	}
	y, m, d := today.Date()
	return time.Date(y, m, d+offset, 0, 0, 0, 0, today.Location())
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate reads a plan date. Servers may echo a full timestamp; only the
// date part is kept.
func ParseDate(s string) (time.Time, error) {
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	return time.Parse(DateLayout, s)
}
