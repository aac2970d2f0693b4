// Package shortener dispatches a long URL to one provider and interprets the
// result.
package shortener

import (
	"context"

	"unishort/internal/codec"
	"unishort/internal/provider"
	"unishort/internal/transport"
)

// Shorten builds p's request for longURL, runs it through exec and decodes the
// body. It reports false when the exchange fails or the body does not contain
// a short URL; the two cases are not distinguished. Shorten holds no state and
// is safe for concurrent use.
func Shorten(ctx context.Context, p provider.Provider, longURL string, exec transport.Executor) (string, bool) {
	c, ok := codec.For(p)
	if !ok {
		return "", false
	}

	raw, ok := exec.Execute(ctx, c.BuildRequest(longURL))
	if !ok {
		return "", false
	}

	return c.ParseResponse(raw)
}
