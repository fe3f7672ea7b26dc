package service

import (
	"context"
	"errors"
	"fmt"

	derr "github.com/TeongTat/travelagentic/internal/domain/errors"
	"github.com/TeongTat/travelagentic/internal/domain/models"
	"github.com/TeongTat/travelagentic/internal/domain/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// SummaryStage resolves the destination, averages its forecast maxima and asks
// the completer for the final markdown brief.
type SummaryStage struct {
	log         *zap.Logger
	geocoder    ports.Geocoder
	forecaster  ports.Forecaster
	completer   ports.Completer
	temperature float32
}

func NewSummaryStage(log *zap.Logger, geocoder ports.Geocoder, forecaster ports.Forecaster, completer ports.Completer, temperature float32) *SummaryStage {
	if log == nil {
		log = zap.NewNop()
	}
	if temperature < 0 {
		temperature = DefaultTemperature
	}

	return &SummaryStage{
		log:         log,
		geocoder:    geocoder,
		forecaster:  forecaster,
		completer:   completer,
		temperature: temperature,
	}
}

// Run returns the summary result and, when the forecast was usable, the weather
// figures the summary was built from.
func (s *SummaryStage) Run(ctx context.Context, req models.TripRequest, intro, flights string) (models.StageResult, *models.WeatherSummary) {
	const op = "service.SummaryStage.Run"
	ctx, span := otel.Tracer(tracerName).Start(ctx, op)
	defer span.End()
	span.SetAttributes(attribute.String("trip.destination", req.Destination))

	logger := s.log.With(
		zap.String("op", op),
		zap.String("destination", req.Destination),
	)

	weather, err := s.weather(ctx, span, req.Destination)
	if err != nil {
		if errors.Is(err, derr.ErrLocationNotFound) {
			logger.Info("weather unavailable", zap.Error(err))
			span.AddEvent("weather.unavailable")
			span.SetStatus(otelcodes.Ok, "no weather")
			return models.StageResult{Stage: models.StageSummary, Status: models.StatusEmpty, Text: NoWeatherMessage}, nil
		}
		logger.Warn("weather lookup failed", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "weather lookup failed")
		return failed(models.StageSummary, SummaryErrorPrefix, op, err), nil
	}
	logger = logger.With(zap.Float64("avg_max_temp_c", weather.AvgMaxTempC))

	text, err := s.completer.Complete(ctx, ports.CompletionRequest{
		Prompt:      buildSummaryPrompt(req, intro, flights, weather),
		Temperature: s.temperature,
	})
	if err != nil {
		logger.Warn("summary completion failed", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "completion failed")
		return failed(models.StageSummary, SummaryErrorPrefix, op, err), &weather
	}

	span.SetStatus(otelcodes.Ok, "ok")
	logger.Info("summary generated", zap.Int("chars", len(text)))
	return models.StageResult{Stage: models.StageSummary, Status: models.StatusOK, Text: text}, &weather
}

func (s *SummaryStage) weather(ctx context.Context, span trace.Span, destination string) (models.WeatherSummary, error) {
	loc, err := s.geocoder.Geocode(ctx, destination)
	if err != nil {
		return models.WeatherSummary{}, err
	}
	span.SetAttributes(
		attribute.String("weather.location", loc.Name),
		attribute.Float64("weather.latitude", loc.Latitude),
		attribute.Float64("weather.longitude", loc.Longitude),
	)

	forecast, err := s.forecaster.GetDailyForecast(ctx, loc.Latitude, loc.Longitude, models.ForecastDays)
	if err != nil {
		return models.WeatherSummary{}, err
	}

	if len(forecast.MaxTempsC) == 0 {
		return models.WeatherSummary{}, derr.ErrNoForecast
	}
	if len(forecast.MaxTempsC) != len(forecast.Dates) || len(forecast.MaxTempsC) < models.ForecastDays {
		return models.WeatherSummary{}, fmt.Errorf("%w: %d daily maxima for %d dates, want %d days",
			derr.ErrMalformedResponse, len(forecast.MaxTempsC), len(forecast.Dates), models.ForecastDays)
	}

	avg, _ := models.Mean(forecast.MaxTempsC)

	return models.WeatherSummary{
		Location:    loc.Name,
		Latitude:    loc.Latitude,
		Longitude:   loc.Longitude,
		AvgMaxTempC: avg,
	}, nil
}
