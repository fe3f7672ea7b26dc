package errors

import "errors"

var (
	ErrMissingAPIKey      = errors.New("api key is not configured")
	ErrSourceUnavailable  = errors.New("source unavailable")
	ErrUpstreamRejected   = errors.New("upstream rejected request")
	ErrMalformedResponse  = errors.New("malformed upstream response")
	ErrEmptyCompletion    = errors.New("completion returned empty text")
	ErrLocationNotFound   = errors.New("location not found")
	ErrNoForecast         = errors.New("forecast has no daily maxima")
	ErrUpstreamStage      = errors.New("upstream stage failed")
	ErrUnknownLLMProvider = errors.New("unknown llm provider")
)
