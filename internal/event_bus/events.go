package event_bus

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TripCreated EventType = "trip.created"
	TripUpdated EventType = "trip.updated"
	TripDeleted EventType = "trip.deleted"
)

// TripEvent is the payload published for every trip lifecycle change.
// Deleted trips carry only the ID.
type TripEvent struct {
	ID     string
	Date   time.Time
	Profit decimal.Decimal
}
