package gemini

import (
	"context"
	"testing"

	derr "github.com/TeongTat/travelagentic/internal/domain/errors"
	"github.com/TeongTat/travelagentic/internal/domain/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeModels struct {
	resp   *genai.GenerateContentResponse
	err    error
	model  string
	prompt string
	temp   float32
}

func (f *fakeModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	if config != nil && config.Temperature != nil {
		f.temp = *config.Temperature
	}
	return f.resp, f.err
}

func TestComplete_JoinsCandidateParts(t *testing.T) {
	models := &fakeModels{resp: &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: "## Welcome"}, {Text: " to Narita"}}},
		}},
	}}
	c := newClient(models, "")

	got, err := c.Complete(context.Background(), ports.CompletionRequest{Prompt: "intro please", Temperature: 0.7})
	require.NoError(t, err)
	assert.Equal(t, "## Welcome to Narita", got)
	assert.Equal(t, DefaultModel, models.model)
	assert.Equal(t, "intro please", models.prompt)
	assert.InDelta(t, 0.7, models.temp, 1e-6)
}

func TestComplete_NoCandidates(t *testing.T) {
	c := newClient(&fakeModels{resp: &genai.GenerateContentResponse{}}, "gemini-1.5-flash")

	_, err := c.Complete(context.Background(), ports.CompletionRequest{Prompt: "x"})
	assert.ErrorIs(t, err, derr.ErrEmptyCompletion)
}

func TestComplete_ClassifiesAPIError(t *testing.T) {
	c := newClient(&fakeModels{err: genai.APIError{Code: 429, Message: "RESOURCE_EXHAUSTED"}}, "")

	_, err := c.Complete(context.Background(), ports.CompletionRequest{Prompt: "x"})
	assert.ErrorIs(t, err, derr.ErrSourceUnavailable)

	c = newClient(&fakeModels{err: genai.APIError{Code: 400, Message: "API key not valid"}}, "")
	_, err = c.Complete(context.Background(), ports.CompletionRequest{Prompt: "x"})
	assert.ErrorIs(t, err, derr.ErrUpstreamRejected)
}

func TestNewClient_RequiresKey(t *testing.T) {
	_, err := NewClient(context.Background(), " ", "", 0)
	assert.ErrorIs(t, err, derr.ErrMissingAPIKey)
}
