package dto

type FlightsResponse struct {
	Data  []FlightItem `json:"data"`
	Error *APIError    `json:"error,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type FlightItem struct {
	FlightStatus string    `json:"flight_status"`
	Airline      *Airline  `json:"airline"`
	Flight       *Flight   `json:"flight"`
	Departure    *Endpoint `json:"departure"`
	Arrival      *Endpoint `json:"arrival"`
}

type Airline struct {
	Name string `json:"name"`
	IATA string `json:"iata"`
}

type Flight struct {
	Number string `json:"number"`
	IATA   string `json:"iata"`
}

type Endpoint struct {
	Airport   string `json:"airport"`
	IATA      string `json:"iata"`
	Scheduled string `json:"scheduled"`
}
