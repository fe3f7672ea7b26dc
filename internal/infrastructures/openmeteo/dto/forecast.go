package dto

type ForecastResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Daily     *Daily  `json:"daily"`
}

type Daily struct {
	Time             []string   `json:"time"`
	Temperature2mMax []*float64 `json:"temperature_2m_max"`
	Temperature2mMin []*float64 `json:"temperature_2m_min"`
	PrecipitationSum []*float64 `json:"precipitation_sum"`
}

// ErrorResponse is returned with a 4xx status for rejected parameters.
type ErrorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}
