package auth

import (
	"context"
	"net/http"
	"slices"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type contextKey struct{}

func WithActor(ctx context.Context, actor entities.Actor) context.Context {
	return context.WithValue(ctx, contextKey{}, actor)
}

func ActorFromContext(ctx context.Context) (entities.Actor, bool) {
	actor, ok := ctx.Value(contextKey{}).(entities.Actor)
	return actor, ok
}

// Middleware authenticates the bearer token and reloads the user, so a
// block takes effect on the next request rather than at token expiry.
func Middleware(log handlerLogger, tokens TokenValidator, users UserLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := ExtractToken(r.Header.Get("Authorization"))
			if err != nil {
				writeError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			actor, err := tokens.Validate(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			u, err := users.GetUser(r.Context(), actor.UserID)
			if err != nil {
				log.With(
					logger.NewField("user_id", actor.UserID),
					logger.NewField("error", err),
				).Warn("token subject could not be loaded")
				writeError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}
			if u.IsBlocked {
				writeError(w, http.StatusForbidden, "Account is blocked")
				return
			}

			// the stored role wins over the one in the token
			actor.Role = u.Role
			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

func RequireRole(roles ...entities.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ActorFromContext(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			if !slices.Contains(roles, actor.Role) {
				writeError(w, http.StatusForbidden, "Insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"message":"` + message + `"}`))
}
