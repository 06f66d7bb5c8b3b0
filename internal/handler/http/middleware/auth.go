package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/hourline-app/hourline-backend-go/internal/handler/http/response"
	"github.com/hourline-app/hourline-backend-go/internal/pkg/token"
)

type ctxKey int

const userIDKey ctxKey = iota

// UserID returns the authenticated user id stored by AuthRequired.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// AuthRequired rejects requests without a verified access token carrying a
// user id, and stashes that id on the request context.
func AuthRequired(tokens token.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			t, _, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if t == nil {
				response.Unauthorized(w, "Missing access token")
				return
			}

			claims, err := t.AsMap(r.Context())
			if err != nil {
				response.Unauthorized(w, "Invalid access token")
				return
			}
			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.Unauthorized(w, "Invalid access token")
				return
			}

			userID, ok := tokens.UserIDFromToken(t)
			if !ok {
				response.Unauthorized(w, "Invalid access token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}
