package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/doeshing/vyra-go/internal/domain"
)

// RequestIDHeader carries the per-request identifier.
const RequestIDHeader = "X-Request-ID"

type contextKey string

const requestIDContextKey contextKey = "request_id"

// RequestIDFrom returns the identifier stored by the request-id middleware.
func RequestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDContextKey).(string); ok {
		return id
	}
	return ""
}

// requestID reuses an inbound X-Request-ID or mints a new one, echoes it and logs the request.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		started := time.Now()
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDContextKey, id)))

		s.logger.Debug("request served", map[string]interface{}{
			"method":      r.Method,
			"path":        r.URL.Path,
			"request_id":  id,
			"duration_ms": time.Since(started).Milliseconds(),
		})
	})
}

// recoverer converts a panic into the generic 500 payload.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			err := fmt.Errorf("panic: %v", rec)
			s.logError(r, "request failed", err)
			s.writeJSON(w, http.StatusInternalServerError, errorResponse{
				Response: domain.ErrorText,
				Error:    err.Error(),
			})
		}()
		next.ServeHTTP(w, r)
	})
}
