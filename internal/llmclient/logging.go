package llmclient

import (
	"context"
	"log"
	"time"
)

// WithLogging logs invocation start, success and failure. Provide a custom
// logger or nil to use log.Default(). Logging never changes the result.
func WithLogging(logger *log.Logger) Middleware {
	if logger == nil {
		logger = log.Default()
	}
	return func(next Client) Client {
		return &logging{next: next, log: logger}
	}
}

type logging struct {
	next Client
	log  *log.Logger
}

func (l *logging) Name() string { return l.next.Name() }
func (l *logging) Close() error { return l.next.Close() }

func (l *logging) Complete(ctx context.Context, system, user string) (string, error) {
	l.log.Printf("LLM request (%s): %d bytes", l.next.Name(), len(system)+len(user))
	start := time.Now()
	text, err := l.next.Complete(ctx, system, user)
	if err != nil {
		l.log.Printf("LLM error (%s): %v", l.next.Name(), err)
		return "", err
	}
	l.log.Printf("LLM reply (%s): %d bytes in %s", l.next.Name(), len(text), time.Since(start).Round(time.Millisecond))
	return text, nil
}
