package mappers

import (
	"strings"

	"github.com/TeongTat/travelagentic/internal/domain/models"
	"github.com/TeongTat/travelagentic/internal/infrastructures/aviationstack/dto"
)

// ToFlightRecords keeps upstream order and fills absent fields with placeholders.
func ToFlightRecords(items []dto.FlightItem, limit int) []models.FlightRecord {
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	records := make([]models.FlightRecord, 0, len(items))
	for _, item := range items {
		records = append(records, ToFlightRecord(item))
	}
	return records
}

func ToFlightRecord(item dto.FlightItem) models.FlightRecord {
	record := models.FlightRecord{
		Airline:            models.UnknownAirline,
		FlightNumber:       models.NotAvailable,
		DepartureAirport:   models.UnknownAirport,
		ArrivalAirport:     models.UnknownAirport,
		ScheduledDeparture: models.NotAvailable,
		ScheduledArrival:   models.NotAvailable,
	}

	if item.Airline != nil {
		record.Airline = orDefault(item.Airline.Name, models.UnknownAirline)
	}
	if item.Flight != nil {
		record.FlightNumber = orDefault(item.Flight.IATA, models.NotAvailable)
	}
	if item.Departure != nil {
		record.DepartureAirport = orDefault(item.Departure.Airport, models.UnknownAirport)
		record.ScheduledDeparture = orDefault(item.Departure.Scheduled, models.NotAvailable)
	}
	if item.Arrival != nil {
		record.ArrivalAirport = orDefault(item.Arrival.Airport, models.UnknownAirport)
		record.ScheduledArrival = orDefault(item.Arrival.Scheduled, models.NotAvailable)
	}

	return record
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return strings.TrimSpace(value)
}
