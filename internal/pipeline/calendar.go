package pipeline

import (
	"strconv"
	"strings"
	"time"

	"github.com/tiffinstash/delivery-service/internal/model"
)

// ComputeEndDate derives a row's end date from its start date, duration
// and delivery calendar. The calendar's valid days are Monday-Friday,
// plus Saturday/Sunday when the corresponding mask flag is set, minus
// every skip-exception date. The end date is the start date advanced by
// (duration-1) valid steps, so a duration of 1 leaves it equal to the
// start date.
//
// Sentinel handling, in priority order: a paused start ("P") yields
// "PAUSE"; an empty or not-scheduled start is returned unchanged; a
// non-empty start that does not parse is passed through raw. None of
// these are errors.
func ComputeEndDate(start, days string, skips []string, satOK, sunOK bool) string {
	s := strings.TrimSpace(start)
	if s == model.SentinelPausedStart {
		return model.SentinelPausedEnd
	}
	if s == "" || s == model.SentinelNoSchedule || s == "0" {
		return start
	}

	startDt, err := parseDate(s)
	if err != nil {
		return start
	}

	n := coerceDays(days)
	if n <= 1 {
		return formatDate(startDt)
	}

	holidays := parseSkipDates(skips)
	end := startDt
	for step := 0; step < n-1; step++ {
		end = nextDeliveryDay(end, satOK, sunOK, holidays)
	}
	return formatDate(end)
}

// ApplyEndDate computes and stores the end date for a delivery row.
func ApplyEndDate(row *model.DeliveryRow) {
	row.EndDate = ComputeEndDate(
		row.StartDate,
		row.Days,
		row.SkipSlots(),
		strings.EqualFold(strings.TrimSpace(row.DelSat), "yes"),
		strings.EqualFold(strings.TrimSpace(row.DelSun), "yes"),
	)
}

// coerceDays parses the duration column; non-numeric or missing values
// mean a single-day delivery. Float strings are truncated.
func coerceDays(v string) int {
	s := strings.TrimSpace(v)
	if s == "" {
		return 1
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 {
			return 1
		}
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if f < 1 {
			return 1
		}
		return int(f)
	}
	return 1
}

func parseSkipDates(skips []string) map[time.Time]struct{} {
	holidays := make(map[time.Time]struct{})
	for _, v := range skips {
		if model.EmptySlot(v) {
			continue
		}
		if d, err := parseDate(v); err == nil {
			holidays[dateOnly(d)] = struct{}{}
		}
	}
	return holidays
}

func nextDeliveryDay(after time.Time, satOK, sunOK bool, holidays map[time.Time]struct{}) time.Time {
	curr := after.AddDate(0, 0, 1)
	for !isDeliveryDay(curr, satOK, sunOK, holidays) {
		curr = curr.AddDate(0, 0, 1)
	}
	return curr
}

func isDeliveryDay(t time.Time, satOK, sunOK bool, holidays map[time.Time]struct{}) bool {
	switch t.Weekday() {
	case time.Saturday:
		if !satOK {
			return false
		}
	case time.Sunday:
		if !sunOK {
			return false
		}
	}
	_, skipped := holidays[dateOnly(t)]
	return !skipped
}
