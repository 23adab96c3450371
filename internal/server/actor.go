package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jonathan/tailor-engine/internal/config"
	"github.com/jonathan/tailor-engine/internal/server/middleware"
)

// Token verification errors
var (
	ErrTokenMissingActor = errors.New("token carries no actor")
	ErrTokenTooOld       = errors.New("token exceeds maximum age")
)

// ActorClaims are the claims read from a bearer token issued by the identity provider.
// actor_id is preferred; sub is used when it is absent.
type ActorClaims struct {
	ActorID string `json:"actor_id,omitempty"`
	jwt.RegisteredClaims
}

// GetActorID returns actor_id, falling back to the subject
func (c *ActorClaims) GetActorID() string {
	if c.ActorID != "" {
		return c.ActorID
	}
	return c.Subject
}

// ActorResolver verifies HMAC-signed bearer tokens and resolves the acting user.
// The engine never issues tokens.
type ActorResolver struct {
	secret []byte
	maxAge time.Duration
	parser *jwt.Parser
	now    func() time.Time
}

var _ middleware.TokenValidator = (*ActorResolver)(nil)

// NewActorResolver builds a resolver from the JWT configuration
func NewActorResolver(cfg *config.JWTConfig) *ActorResolver {
	r := &ActorResolver{
		secret: []byte(cfg.Secret),
		maxAge: time.Duration(cfg.ExpirationHours) * time.Hour,
		now:    time.Now,
	}
	r.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return r.now() }),
	)
	return r
}

func (r *ActorResolver) key(*jwt.Token) (interface{}, error) {
	return r.secret, nil
}

// Resolve verifies the token and returns its claims
func (r *ActorResolver) Resolve(tokenString string) (*ActorClaims, error) {
	claims := &ActorClaims{}
	if _, err := r.parser.ParseWithClaims(tokenString, claims, r.key); err != nil {
		return nil, fmt.Errorf("failed to verify token: %w", err)
	}
	if claims.GetActorID() == "" {
		return nil, ErrTokenMissingActor
	}
	if r.maxAge > 0 && claims.IssuedAt != nil && r.now().Sub(claims.IssuedAt.Time) > r.maxAge {
		return nil, ErrTokenTooOld
	}
	return claims, nil
}

// ValidateToken implements middleware.TokenValidator
func (r *ActorResolver) ValidateToken(tokenString string) (middleware.ActorIDGetter, error) {
	claims, err := r.Resolve(tokenString)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
