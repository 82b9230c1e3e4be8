package pipeline

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var dateLayouts = []string{
	dateLayout,
	"2006-01-02 15:04:05",
	"2-Jan-2006",
}

// parseDate accepts the calendar-date formats seen in order exports.
// Timestamps are truncated to their date part first.
func parseDate(v string) (time.Time, error) {
	s := strings.TrimSpace(v)
	if i := strings.IndexByte(s, 'T'); i > 0 {
		s = s[:i]
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", v)
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// dateOnly strips the time-of-day component for calendar comparison.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
