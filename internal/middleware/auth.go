package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/applytrack/applytrack/internal/auth"
	"github.com/applytrack/applytrack/internal/metrics"
	"github.com/applytrack/applytrack/internal/token"
)

// AuthConfig holds configuration for the auth middleware.
type AuthConfig struct {
	Logger  *slog.Logger
	Tokens  *token.Manager
	Metrics metrics.Recorder
}

// Auth returns a middleware that authenticates requests with a bearer token.
// It extracts the token from the Authorization header, verifies signature
// and expiry, and injects the decoded identity into the request context.
// Verification is purely local; there is no session lookup.
func Auth(cfg AuthConfig) func(http.Handler) http.Handler {
	recorder := cfg.Metrics
	if recorder == nil {
		recorder = metrics.NewNoop()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := extractBearerToken(r)
			if raw == "" {
				cfg.Logger.Warn("authentication failed",
					slog.String("reason", "missing_token"),
					slog.String("ip", r.RemoteAddr),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				recorder.IncAuthRejected()
				writeAuthError(w)
				return
			}

			user, err := cfg.Tokens.Verify(raw)
			if err != nil {
				reason := "invalid_token"
				if err == token.ErrTokenExpired {
					reason = "expired_token"
				}
				cfg.Logger.Warn("authentication failed",
					slog.String("reason", reason),
					slog.String("ip", r.RemoteAddr),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				recorder.IncAuthRejected()
				writeAuthError(w)
				return
			}

			ctx := auth.ContextWithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractBearerToken extracts the token from the Authorization header.
// Returns empty string unless the header has the exact "Bearer <token>" shape.
func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// writeAuthError writes a 401 Unauthorized response.
// Uses the same message for all auth failures to prevent enumeration.
func writeAuthError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"msg":"Invalid authentication"}`))
}
