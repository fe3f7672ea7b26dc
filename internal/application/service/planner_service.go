package service

import (
	"context"
	"fmt"
	"time"

	derr "github.com/TeongTat/travelagentic/internal/domain/errors"
	"github.com/TeongTat/travelagentic/internal/domain/models"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

const tracerName = "travelagentic/service"

type PlannerService struct {
	log     *zap.Logger
	intro   *IntroStage
	flights *FlightStage
	summary *SummaryStage
	now     func() time.Time
}

func NewPlannerService(log *zap.Logger, intro *IntroStage, flights *FlightStage, summary *SummaryStage) *PlannerService {
	if log == nil {
		log = zap.NewNop()
	}

	return &PlannerService{
		log:     log,
		intro:   intro,
		flights: flights,
		summary: summary,
		now:     time.Now,
	}
}

// Plan runs introduction, flight lookup and summary in order. It never fails:
// every stage outcome, including errors, is reported in the returned Brief.
func (s *PlannerService) Plan(ctx context.Context, req models.TripRequest) models.Brief {
	const op = "service.PlannerService.Plan"
	req = req.Normalized()
	runID := uuid.NewString()

	ctx, span := otel.Tracer(tracerName).Start(ctx, op)
	defer span.End()
	span.SetAttributes(
		attribute.String("brief.run_id", runID),
		attribute.String("trip.origin", req.Origin),
		attribute.String("trip.destination", req.Destination),
	)

	logger := s.log.With(
		zap.String("op", op),
		zap.String("run_id", runID),
		zap.String("origin", req.Origin),
		zap.String("destination", req.Destination),
	)
	logger.Info("brief started")

	brief := models.Brief{RunID: runID, Request: req}

	brief.Introduction = s.intro.Run(ctx, req)
	logStage(logger, brief.Introduction)

	brief.Flights = s.flights.Run(ctx, req)
	logStage(logger, brief.Flights)

	if brief.Introduction.Failed() {
		brief.Summary = models.StageResult{
			Stage:  models.StageSummary,
			Status: models.StatusSkipped,
			Text:   SummarySkippedMessage,
			Err:    fmt.Errorf("%s: %s: %w", op, brief.Introduction.Stage, derr.ErrUpstreamStage),
		}
		span.AddEvent("summary.skipped")
	} else {
		brief.Summary, brief.Weather = s.summary.Run(ctx, req, brief.Introduction.Text, brief.Flights.Text)
	}
	logStage(logger, brief.Summary)

	failures := 0
	for _, pane := range brief.Panes() {
		span.SetAttributes(attribute.String("brief."+pane.Stage.String(), pane.Status.String()))
		if pane.Failed() {
			failures++
		}
	}
	if failures > 0 {
		span.SetStatus(otelcodes.Error, "stages failed")
	} else {
		span.SetStatus(otelcodes.Ok, "ok")
	}

	brief.GeneratedAt = s.now().UTC()
	logger.Info("brief finished", zap.Int("failed_stages", failures))
	return brief
}

func logStage(logger *zap.Logger, r models.StageResult) {
	fields := []zap.Field{
		zap.String("stage", r.Stage.String()),
		zap.String("status", r.Status.String()),
	}
	if r.Err != nil {
		logger.Warn("stage finished", append(fields, zap.Error(r.Err))...)
		return
	}
	logger.Info("stage finished", fields...)
}
