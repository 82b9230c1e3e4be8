package model

// OrderStatus is the delivery lifecycle state. It is derived on every
// pipeline run from today's date against the row's date range and is
// never treated as a source of truth.
type OrderStatus string

const (
	StatusPause     OrderStatus = "PAUSE"
	StatusCancelled OrderStatus = "CANCELLED"
	StatusError     OrderStatus = "ERROR"
	StatusLastDay   OrderStatus = "LAST DAY"
	StatusWIP       OrderStatus = "WIP"
	StatusTBS       OrderStatus = "TBS"
	StatusDelivered OrderStatus = "DELIVERED"
)

// AllStatuses lists every status the resolver can produce, in the order
// the dashboard expects them.
func AllStatuses() []OrderStatus {
	return []OrderStatus{
		StatusPause,
		StatusCancelled,
		StatusError,
		StatusLastDay,
		StatusWIP,
		StatusTBS,
		StatusDelivered,
	}
}

// Sentinel values carried in the start/end date columns. "P" in START
// DATE means the subscription is paused; "-" means no active schedule.
const (
	SentinelPausedStart = "P"
	SentinelPausedEnd   = "PAUSE"
	SentinelNoSchedule  = "-"
)
