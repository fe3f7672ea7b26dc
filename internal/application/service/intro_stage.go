package service

import (
	"context"
	"fmt"

	"github.com/TeongTat/travelagentic/internal/domain/models"
	"github.com/TeongTat/travelagentic/internal/domain/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

type IntroStage struct {
	log         *zap.Logger
	completer   ports.Completer
	temperature float32
}

func NewIntroStage(log *zap.Logger, completer ports.Completer, temperature float32) *IntroStage {
	if log == nil {
		log = zap.NewNop()
	}
	if temperature < 0 {
		temperature = DefaultTemperature
	}

	return &IntroStage{log: log, completer: completer, temperature: temperature}
}

func (s *IntroStage) Run(ctx context.Context, req models.TripRequest) models.StageResult {
	const op = "service.IntroStage.Run"
	ctx, span := otel.Tracer(tracerName).Start(ctx, op)
	defer span.End()
	span.SetAttributes(
		attribute.String("trip.origin", req.Origin),
		attribute.String("trip.destination", req.Destination),
	)

	logger := s.log.With(
		zap.String("op", op),
		zap.String("origin", req.Origin),
		zap.String("destination", req.Destination),
	)

	text, err := s.completer.Complete(ctx, ports.CompletionRequest{
		Prompt:      buildIntroPrompt(req),
		Temperature: s.temperature,
	})
	if err != nil {
		logger.Warn("introduction completion failed", zap.Error(err))
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "completion failed")
		return failed(models.StageIntroduction, IntroErrorPrefix, op, err)
	}

	span.SetStatus(otelcodes.Ok, "ok")
	logger.Info("introduction generated", zap.Int("chars", len(text)))
	return models.StageResult{Stage: models.StageIntroduction, Status: models.StatusOK, Text: text}
}

// failed shows the adapter error after the stage marker and keeps the op chain in Err.
func failed(stage models.Stage, prefix, op string, err error) models.StageResult {
	return models.StageResult{
		Stage:  stage,
		Status: models.StatusFailed,
		Text:   prefix + err.Error(),
		Err:    fmt.Errorf("%s: %w", op, err),
	}
}
