package service

import (
	"fmt"
	"strings"

	"github.com/TeongTat/travelagentic/internal/domain/models"
)

func buildIntroPrompt(req models.TripRequest) string {
	return fmt.Sprintf(
		"Give a friendly, concise travel introduction for a traveler from %s to %s. "+
			"Include main attractions, food highlights, and safety/cultural tips.",
		req.Origin, req.Destination,
	)
}

func buildSummaryPrompt(req models.TripRequest, intro, flights string, weather models.WeatherSummary) string {
	var b strings.Builder

	b.WriteString("\nYou are a friendly AI travel assistant.\n")
	fmt.Fprintf(&b, "Trip: %s → %s\n", req.Origin, req.Destination)
	if dates := travelDates(req); dates != "" {
		fmt.Fprintf(&b, "Dates: %s\n", dates)
	}
	if req.FlightPreference != "" {
		fmt.Fprintf(&b, "Flight preference: %s\n", req.FlightPreference)
	}
	fmt.Fprintf(&b, "Flights:\n%s\n", flights)
	fmt.Fprintf(&b, "Average temperature: %s\n\n", weather.AverageTemp())
	fmt.Fprintf(&b, "Weather/packing question: %s\n\n", req.WeatherQuestion)
	fmt.Fprintf(&b, "Intro info:\n%s\n\n", intro)
	b.WriteString("Summarize everything beautifully in markdown format.\n")
	b.WriteString("Include:\n")
	b.WriteString("- A short warm welcome\n")
	b.WriteString("- Key travel highlights\n")
	b.WriteString("- Flight summary\n")
	b.WriteString("- Weather insights + packing advice\n")

	return b.String()
}

func travelDates(req models.TripRequest) string {
	dep := models.FormatDate(req.DepartureDate)
	ret := models.FormatDate(req.ReturnDate)
	switch {
	case dep != "" && ret != "":
		return dep + " to " + ret
	case dep != "":
		return "departing " + dep
	case ret != "":
		return "returning " + ret
	default:
		return ""
	}
}
