package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/TeongTat/travelagentic/internal/domain/models"
	"github.com/TeongTat/travelagentic/internal/domain/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

type FlightStage struct {
	log    *zap.Logger
	source ports.FlightSource
}

func NewFlightStage(log *zap.Logger, source ports.FlightSource) *FlightStage {
	if log == nil {
		log = zap.NewNop()
	}

	return &FlightStage{log: log, source: source}
}

func (s *FlightStage) Run(ctx context.Context, req models.TripRequest) models.StageResult {
	const op = "service.FlightStage.Run"
	ctx, span := otel.Tracer(tracerName).Start(ctx, op)
	defer span.End()
	span.SetAttributes(
		attribute.String("flight.dep_iata", req.Origin),
		attribute.String("flight.arr_iata", req.Destination),
	)

	logger := s.log.With(
		zap.String("op", op),
		zap.String("dep_iata", req.Origin),
		zap.String("arr_iata", req.Destination),
	)

	records, err := s.source.GetFlights(ctx, ports.FlightSearch{
		DepartureIATA: req.Origin,
		ArrivalIATA:   req.Destination,
		Limit:         models.MaxFlights,
	})
	if err != nil {
		logger.Warn("flight lookup failed", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "flight lookup failed")
		return failed(models.StageFlights, FlightErrorPrefix, op, err)
	}

	span.SetAttributes(attribute.Int("flight.records", len(records)))
	if len(records) == 0 {
		logger.Info("no flights found")
		span.AddEvent("flight.empty")
		span.SetStatus(otelcodes.Ok, "empty")
		return models.StageResult{Stage: models.StageFlights, Status: models.StatusEmpty, Text: NoFlightsMessage}
	}

	span.SetStatus(otelcodes.Ok, "ok")
	logger.Info("flights found", zap.Int("records", len(records)))
	return models.StageResult{Stage: models.StageFlights, Status: models.StatusOK, Text: FormatFlights(records)}
}

// FormatFlights renders at most models.MaxFlights records as numbered markdown
// entries, keeping the source order.
func FormatFlights(records []models.FlightRecord) string {
	if len(records) > models.MaxFlights {
		records = records[:models.MaxFlights]
	}

	var b strings.Builder
	for i, r := range records {
		fmt.Fprintf(&b, "**#%d %s** — Flight %s\n", i+1, r.Airline, r.FlightNumber)
		fmt.Fprintf(&b, "- 🛫 %s → 🛬 %s\n", r.DepartureAirport, r.ArrivalAirport)
		fmt.Fprintf(&b, "- 🕒 %s → %s\n\n", r.ScheduledDeparture, r.ScheduledArrival)
	}
	return b.String()
}
