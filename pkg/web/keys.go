package web

import (
	"context"

	"github.com/go-chi/chi/v5/middleware"
)

// WithRequestID adds a request ID to the context under chi's request id key,
// so middleware.GetReqID sees it as well.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, middleware.RequestIDKey, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns the request ID and a boolean indicating whether it was found.
func GetRequestID(ctx context.Context) (string, bool) {
	id := middleware.GetReqID(ctx)
	return id, id != ""
}
