package models

const (
	UnknownAirline = "Unknown Airline"
	UnknownAirport = "Unknown"
	NotAvailable   = "N/A"
)

// MaxFlights caps how many records the flight stage asks for and renders.
const MaxFlights = 3

type FlightRecord struct {
	Airline            string
	FlightNumber       string
	DepartureAirport   string
	ArrivalAirport     string
	ScheduledDeparture string
	ScheduledArrival   string
}
