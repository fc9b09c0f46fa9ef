package llmclient

import (
	"context"
	"errors"
)

var (
	// ErrNoCredential marks a call short-circuited because no API key is
	// configured. Callers treat it like any other fallback condition; the
	// distinction only matters for the log line.
	ErrNoCredential = errors.New("llm: api credential not configured")

	// ErrEmptyReply marks a 2xx response that carried no usable text.
	ErrEmptyReply = errors.New("llm: empty reply from model")
)

// Client issues a single non-streaming completion call. One system
// instruction, one user turn, fixed generation parameters, no retries.
type Client interface {
	Name() string
	Complete(ctx context.Context, system, user string) (string, error)
	Close() error
}

// Middleware wraps a Client with a cross-cutting concern.
type Middleware func(Client) Client

// Apply wraps c with the given middlewares, first listed outermost.
func Apply(c Client, mws ...Middleware) Client {
	for i := len(mws) - 1; i >= 0; i-- {
		c = mws[i](c)
	}
	return c
}
