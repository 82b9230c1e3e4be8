package pipeline

import (
	"strings"
	"time"

	"github.com/tiffinstash/delivery-service/internal/model"
)

// ResolveStatus derives the lifecycle status of a delivery from today's
// date against its [start, end] range. It is a pure function: status is
// recomputed on every run and never read back from the store, so a
// delayed run self-corrects instead of needing manual fixes.
//
// An unparseable date that is not a known sentinel yields ERROR; that
// state signals upstream data corruption and is surfaced, not
// swallowed.
func ResolveStatus(today time.Time, start, end string) model.OrderStatus {
	s := strings.TrimSpace(start)
	e := strings.TrimSpace(end)

	if s == model.SentinelPausedStart || e == model.SentinelPausedEnd {
		return model.StatusPause
	}
	if s == model.SentinelNoSchedule || e == model.SentinelNoSchedule {
		return model.StatusCancelled
	}

	startDt, err := parseDate(s)
	if err != nil {
		return model.StatusError
	}
	endDt, err := parseDate(e)
	if err != nil {
		return model.StatusError
	}

	t := dateOnly(today)
	startDt = dateOnly(startDt)
	endDt = dateOnly(endDt)

	switch {
	case t.Equal(endDt):
		return model.StatusLastDay
	case !t.Before(startDt) && !t.After(endDt):
		return model.StatusWIP
	case t.Before(startDt):
		return model.StatusTBS
	default:
		return model.StatusDelivered
	}
}
