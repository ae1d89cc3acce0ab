package llm

import (
	"context"
	"fmt"
)

// Generator is the minimal text-in text-out surface the services need.
// Implementations wrap a concrete provider; prompt construction lives with
// the callers.
type Generator interface {
	// Name identifies the underlying provider for logging
	Name() string

	// GenerateText runs one completion. The system prompt frames the task,
	// the user prompt carries it. Provider refusals surface as *RequestError;
	// transport failures surface as ordinary wrapped errors.
	GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// RequestError is an explicit rejection by the provider (quota exhausted,
// unknown model, content policy). Distinct from transport failures, which
// are retryable.
type RequestError struct {
	Provider string
	Message  string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s rejected request: %s", e.Provider, e.Message)
}
