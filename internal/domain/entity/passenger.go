package entity

import "time"

// Passenger check-in statuses.
const (
	CheckInPending = "pending"
	CheckInDone    = "done"
)

// Passenger is a traveler bound to a flight. FlightID is a weak reference:
// deleting the flight detaches the passenger (reference nulled, check-in reset
// to pending) rather than deleting them.
type Passenger struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	Name          string    `bson:"name" json:"name"`
	CPF           string    `bson:"cpf" json:"cpf"` // unique, checksum-valid
	FlightID      *string   `bson:"flightId" json:"flightId"`
	CheckInStatus string    `bson:"checkInStatus" json:"checkInStatus"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`

	// Flight is resolved at read time from FlightID, never stored.
	Flight *Flight `bson:"-" json:"flight,omitempty"`
}

// IsValidCheckInStatus reports whether s is a known check-in status.
func IsValidCheckInStatus(s string) bool {
	return s == CheckInPending || s == CheckInDone
}
