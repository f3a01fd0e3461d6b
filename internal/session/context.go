package session

import "context"

type ctxKey int

const sessionKeyCtx ctxKey = 0

// WithSession attaches the resolved session to the request context.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKeyCtx, s)
}

// FromContext returns the session placed there by the middleware.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKeyCtx).(Session)
	return s, ok
}
