// Package completion wraps the external text-completion collaborator.
// The service consumes it as an opaque prompt-in/text-out call; provider
// failures and timeouts surface through the two sentinel errors so callers
// can map them into their own failure taxonomy.
package completion

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrDependency indicates the completion provider failed the request.
	ErrDependency = errors.New("completion: dependency failure")
	// ErrTimeout indicates the provider did not answer within the deadline.
	ErrTimeout = errors.New("completion: dependency timeout")
)

// Completer produces a text completion for a prompt.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

type disabled struct {
	reason error
}

// Disabled returns a Completer that rejects every request with
// ErrDependency. It keeps the generation endpoint mounted when no
// provider is configured instead of failing startup.
func Disabled(reason error) Completer {
	return disabled{reason: reason}
}

func (d disabled) Complete(context.Context, string, string) (string, error) {
	return "", fmt.Errorf("%w: completion disabled: %v", ErrDependency, d.reason)
}
