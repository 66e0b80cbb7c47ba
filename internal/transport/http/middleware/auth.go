package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/vedran77/quill/internal/token"
)

type contextKey string

const UserIDKey contextKey = "user_id"

// Auth rejects requests without a verifiable bearer token and attaches the
// token's user ID to the request context otherwise. All failures are 401;
// the log line tells missing, invalid and expired apart.
func Auth(tokens *token.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if strings.TrimSpace(header) == "" {
				log.Printf("auth: missing token on %s %s", r.Method, r.URL.Path)
				http.Error(w, `{"error":{"code":"UNAUTHORIZED","message":"Missing token"}}`, http.StatusUnauthorized)
				return
			}

			raw := strings.TrimPrefix(header, "Bearer ")

			userID, err := tokens.Verify(raw)
			if err != nil {
				if errors.Is(err, token.ErrExpired) {
					log.Printf("auth: expired token on %s %s", r.Method, r.URL.Path)
				} else {
					log.Printf("auth: invalid token on %s %s", r.Method, r.URL.Path)
				}
				http.Error(w, `{"error":{"code":"UNAUTHORIZED","message":"Invalid or expired token"}}`, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID extracts the authenticated user ID from the request context.
func GetUserID(ctx context.Context) uuid.UUID {
	return ctx.Value(UserIDKey).(uuid.UUID)
}
