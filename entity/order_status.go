package entity

import "time"

const (
	StatusPending        = "PENDING"
	StatusConfirmed      = "CONFIRMED"
	StatusPreparing      = "PREPARING"
	StatusOutForDelivery = "OUT_FOR_DELIVERY"
	StatusDelivered      = "DELIVERED"
	StatusCancelled      = "CANCELLED"
)

// StatusHop describes one automatic step of the delivery lifecycle: an
// order sitting in From for at least Dwell is moved to Next.
type StatusHop struct {
	From  string
	Dwell time.Duration
	Next  string
}

// StatusFlow is the full automatic progression, PENDING through
// DELIVERED (2+3+10+10 = 25 minutes end to end). DELIVERED and
// CANCELLED are terminal; CANCELLED is never entered automatically.
var StatusFlow = []StatusHop{
	{From: StatusPending, Dwell: 2 * time.Minute, Next: StatusConfirmed},
	{From: StatusConfirmed, Dwell: 3 * time.Minute, Next: StatusPreparing},
	{From: StatusPreparing, Dwell: 10 * time.Minute, Next: StatusOutForDelivery},
	{From: StatusOutForDelivery, Dwell: 10 * time.Minute, Next: StatusDelivered},
}

// NextHop returns the automatic transition out of status, if any.
func NextHop(status string) (StatusHop, bool) {
	for _, h := range StatusFlow {
		if h.From == status {
			return h, true
		}
	}
	return StatusHop{}, false
}
