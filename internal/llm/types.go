package llm

import (
	"context"
	"errors"
)

// ErrUnavailable wraps any failure to obtain a completion from the service.
var ErrUnavailable = errors.New("completion service unavailable")

// Prompt is a system instruction followed by ordered user turns.
type Prompt struct {
	System string
	Turns  []string
}

// Completer returns one completion for a prompt. maxTokens <= 0 leaves the
// output length to the service.
type Completer interface {
	Complete(ctx context.Context, prompt Prompt, maxTokens int) (string, error)
}
