package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/Shresth1822/split-expense/pkg/response"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// UserIDKey is the context key for the authenticated user ID
	UserIDKey ContextKey = "user_id"
)

// UserIDHeader carries the acting user's profile ID. Session handling lives
// in the hosted identity provider in front of this service; by the time a
// request reaches us the gateway has already verified it and stamped this
// header.
const UserIDHeader = "X-User-ID"

// RequireUser resolves the acting user from the request and stores it in the
// context. Handlers read it back with GetUserID and pass the ID explicitly
// into every service call; nothing below the handler layer touches the
// request context for identity.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(UserIDHeader)
		if userID == "" {
			response.Unauthorized(w, "X-User-ID header required")
			return
		}
		if _, err := uuid.Parse(userID); err != nil {
			response.Unauthorized(w, "X-User-ID must be a valid UUID")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the acting user's ID from the request context
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}
