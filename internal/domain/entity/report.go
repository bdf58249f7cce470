package entity

import "time"

// ReportGateNA marks a report entry whose flight has no gate assigned.
const ReportGateNA = "N/A"

// FlightReportEntry is one denormalized row of the daily flight report: a
// flight joined with its resolved gate and passenger list.
type FlightReportEntry struct {
	FlightID      string    `json:"flightId"`
	FlightNumber  string    `json:"flightNumber"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureTime time.Time `json:"departureTime"`
	ArrivalTime   time.Time `json:"arrivalTime"`
	Status        string    `json:"status"`
	// Gate is either a *ReportGate or the ReportGateNA sentinel string.
	Gate       interface{}       `json:"gate"`
	Passengers []ReportPassenger `json:"passengers"`
}

// ReportGate is the gate projection used in report entries.
type ReportGate struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Available bool   `json:"available"`
}

// ReportPassenger is the passenger projection used in report entries.
type ReportPassenger struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	CPF           string `json:"cpf"`
	CheckInStatus string `json:"checkInStatus"`
}
