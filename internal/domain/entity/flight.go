package entity

import "time"

// Flight statuses. A flight in a terminal status never occupies a gate.
const (
	FlightStatusScheduled = "scheduled"
	FlightStatusBoarding  = "boarding"
	FlightStatusCompleted = "completed"
	FlightStatusCancelled = "cancelled"
)

// Flight is a scheduled journey between two airports. GateID is a weak
// reference: the gate is owned independently and the relation may be nil.
type Flight struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	FlightNumber  string    `bson:"flightNumber" json:"flightNumber"` // unique, uppercase
	Origin        string    `bson:"origin" json:"origin"`             // 3-letter IATA code
	Destination   string    `bson:"destination" json:"destination"`   // 3-letter IATA code
	DepartureTime time.Time `bson:"departureTime" json:"departureTime"`
	ArrivalTime   time.Time `bson:"arrivalTime" json:"arrivalTime"`
	GateID        *string   `bson:"gateId" json:"gateId"`
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`

	// Gate is resolved at read time from GateID, never stored.
	Gate *Gate `bson:"-" json:"gate,omitempty"`
}

// IsValidFlightStatus reports whether s is a known flight status.
func IsValidFlightStatus(s string) bool {
	switch s {
	case FlightStatusScheduled, FlightStatusBoarding, FlightStatusCompleted, FlightStatusCancelled:
		return true
	}
	return false
}

// IsTerminalStatus reports whether s is a terminal flight status.
func IsTerminalStatus(s string) bool {
	return s == FlightStatusCompleted || s == FlightStatusCancelled
}
