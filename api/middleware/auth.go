package middleware

import (
	"context"
	"encoding/json"
	"net/http"
)

const UserIDKey contextKey = "user_id"

const userIDHeader = "X-User-ID"

// CallerID extracts the caller identity resolved upstream. Verifying the
// identity is not this service's job; requests without one are rejected.
func CallerID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(userIDHeader)
		if userID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{
				"error":    "Missing " + userIDHeader + " header",
				"trace_id": GetTraceID(r.Context()),
			})
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetUserID(ctx context.Context) string {
	if userID, ok := ctx.Value(UserIDKey).(string); ok {
		return userID
	}
	return ""
}
