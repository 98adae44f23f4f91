// Package correlationid carries a per-request correlation ID through
// context, so logs and outgoing messages can be tied back to the request
// that caused them.
package correlationid

import "context"

// Header is the HTTP header (and message header) the correlation ID
// travels in.
const Header = "X-Correlation-ID"

type contextKey struct{}

// NewContext returns a context carrying the given correlation ID.
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the correlation ID stored in the context, if any.
func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(contextKey{}).(string)
	return id, ok && id != ""
}
