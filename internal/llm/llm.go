// Package llm defines the contract shared by the generative model clients.
package llm

import (
	"context"
	"fmt"
)

// Generator sends a prompt to a language model and returns its raw text completion.
// Implementations must be safe for concurrent use.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	ModelName() string
}

// InvocationError is returned when a call to the model provider fails,
// including transport, authentication and API-side errors.
type InvocationError struct {
	Provider string
	Err      error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *InvocationError) Unwrap() error { return e.Err }
