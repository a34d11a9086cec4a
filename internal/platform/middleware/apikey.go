package middleware

import (
	"context"
	"log/slog"
	"net/http"
)

// APIKeyHeader is the header external agents present their key in.
const APIKeyHeader = "X-API-Key"

// KeyVerifier defines the interface for verifying issued API keys.
type KeyVerifier interface {
	Verify(ctx context.Context, key string) error
}

// RequireAPIKey gates a route behind the external API key capability. The
// verifier owns expiry and revocation; this layer only translates the outcome.
func RequireAPIKey(verifier KeyVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(APIKeyHeader)
			if key == "" {
				unauthorized(w)
				return
			}
			if err := verifier.Verify(r.Context(), key); err != nil {
				logger.WarnContext(r.Context(), "api key rejected",
					"error", err,
					"request_id", GetRequestID(r.Context()),
				)
				unauthorized(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"status":"error","message":"Unauthorized: Invalid API key"}`))
}
