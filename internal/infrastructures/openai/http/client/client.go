package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	derr "github.com/TeongTat/travelagentic/internal/domain/errors"
	"github.com/TeongTat/travelagentic/internal/domain/ports"
	"github.com/TeongTat/travelagentic/internal/infrastructures/openai/dto"
)

const (
	defaultBaseURL = "https://api.openai.com"
	DefaultModel   = "gpt-4o-mini"
)

type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     strings.TrimSpace(apiKey),
		model:      strings.TrimSpace(model),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Complete(ctx context.Context, in ports.CompletionRequest) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("openai api key: %w", derr.ErrMissingAPIKey)
	}

	body, err := json.Marshal(dto.ChatCompletionRequest{
		Model:       c.model,
		Messages:    []dto.ChatMessage{{Role: "user", Content: in.Prompt}},
		Temperature: in.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}
		return "", fmt.Errorf("%w: openai request: %v", derr.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", parseError(resp)
	}

	var payload dto.ChatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("%w: decode openai response: %v", derr.ErrMalformedResponse, err)
	}

	if len(payload.Choices) == 0 {
		return "", derr.ErrEmptyCompletion
	}
	text := strings.TrimSpace(payload.Choices[0].Message.Content)
	if text == "" {
		return "", derr.ErrEmptyCompletion
	}

	return text, nil
}

func parseError(resp *http.Response) error {
	kind := derr.ErrUpstreamRejected
	if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
		kind = derr.ErrSourceUnavailable
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil || len(data) == 0 {
		return fmt.Errorf("%w: openai status: %s", kind, resp.Status)
	}

	var payload dto.ErrorResponse
	if err := json.Unmarshal(data, &payload); err != nil || payload.Error.Message == "" {
		return fmt.Errorf("%w: openai status: %s", kind, resp.Status)
	}

	return fmt.Errorf("%w: openai status: %s: %s", kind, resp.Status, payload.Error.Message)
}
