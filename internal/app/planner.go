package app

import (
	"context"
	"fmt"

	"github.com/TeongTat/travelagentic/internal/application/service"
	"github.com/TeongTat/travelagentic/internal/config"
	aviationstack "github.com/TeongTat/travelagentic/internal/infrastructures/aviationstack/http/client"
	"github.com/TeongTat/travelagentic/internal/infrastructures/llm"
	openmeteo "github.com/TeongTat/travelagentic/internal/infrastructures/openmeteo/http/client"
	"go.uber.org/zap"
)

// NewPlanner builds every upstream client once from cfg and wires them into
// the three stages.
func NewPlanner(ctx context.Context, log *zap.Logger, cfg *config.Config) (*service.PlannerService, error) {
	const op = "app.NewPlanner"

	completer, err := llm.NewCompleter(ctx, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	flights := aviationstack.NewClient(cfg.Aviationstack.BaseURL, cfg.Aviationstack.Key, cfg.Aviationstack.Timeout)
	weather := openmeteo.NewClient(cfg.OpenMeteo.GeocodingURL, cfg.OpenMeteo.ForecastURL, cfg.OpenMeteo.Timeout)

	log.Info("planner configured",
		zap.String("llm_provider", cfg.LLM.Provider),
		zap.String("llm_model", cfg.LLM.Model),
		zap.String("aviationstack_url", cfg.Aviationstack.BaseURL),
	)

	return service.NewPlannerService(
		log,
		service.NewIntroStage(log, completer, cfg.LLM.Temperature),
		service.NewFlightStage(log, flights),
		service.NewSummaryStage(log, weather, weather, completer, cfg.LLM.Temperature),
	), nil
}
