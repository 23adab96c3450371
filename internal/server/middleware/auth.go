// Package middleware provides HTTP middleware for resolving the acting user of a request.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// actorIDKey is the context key for storing the resolved actor id.
const actorIDKey ContextKey = "actorID"

// TokenValidator is an interface for validating bearer tokens.
// server.ActorResolver is the production implementation.
type TokenValidator interface {
	ValidateToken(tokenString string) (ActorIDGetter, error)
}

// ActorIDGetter is an interface for extracting the actor id from token claims.
type ActorIDGetter interface {
	GetActorID() string
}

// AuthMiddleware creates middleware that validates bearer tokens and adds the actor id to the request context.
// A missing or invalid token is rejected with 401.
func AuthMiddleware(tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r)
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			actorID := claims.GetActorID()
			if actorID == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActorID(r.Context(), actorID)))
		})
	}
}

// DefaultActorMiddleware attaches a fixed actor id to every request. It is used when token auth is not configured.
func DefaultActorMiddleware(actorID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithActorID(r.Context(), actorID)))
		})
	}
}

// bearerToken extracts the token from a case-insensitive "Bearer" Authorization header
func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	tokenString := strings.TrimSpace(parts[1])
	return tokenString, tokenString != ""
}

// WithActorID returns a context carrying the actor id.
func WithActorID(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, actorIDKey, actorID)
}

// GetActorID extracts the actor id from the request context.
func GetActorID(r *http.Request) (string, error) {
	actorID, ok := r.Context().Value(actorIDKey).(string)
	if !ok || actorID == "" {
		return "", fmt.Errorf("actor ID not found in request context")
	}
	return actorID, nil
}
