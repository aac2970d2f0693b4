// Package transport executes request descriptors over HTTP.
package transport

import (
	"context"

	"unishort/internal/request"
)

// Executor performs one HTTP exchange. It returns the response body of any
// completed exchange regardless of status code, and false when the exchange
// could not be completed (connection error, timeout, unreadable body).
type Executor interface {
	Execute(ctx context.Context, req request.Descriptor) (string, bool)
}

// ExecutorFunc adapts a plain function to the Executor interface.
type ExecutorFunc func(ctx context.Context, req request.Descriptor) (string, bool)

func (f ExecutorFunc) Execute(ctx context.Context, req request.Descriptor) (string, bool) {
	return f(ctx, req)
}
