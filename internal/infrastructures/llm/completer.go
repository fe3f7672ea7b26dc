package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/TeongTat/travelagentic/internal/config"
	derr "github.com/TeongTat/travelagentic/internal/domain/errors"
	"github.com/TeongTat/travelagentic/internal/domain/ports"
	"github.com/TeongTat/travelagentic/internal/infrastructures/gemini"
	openai "github.com/TeongTat/travelagentic/internal/infrastructures/openai/http/client"
)

// NewCompleter builds the completion client for the configured provider.
func NewCompleter(ctx context.Context, cfg config.LLMConfig) (ports.Completer, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case config.ProviderOpenAI, "":
		return openai.NewClient(cfg.OpenAIURL, cfg.OpenAIKey, cfg.Model, cfg.Timeout), nil
	case config.ProviderGemini:
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.Model, cfg.Timeout)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("%w: %q", derr.ErrUnknownLLMProvider, cfg.Provider)
	}
}
