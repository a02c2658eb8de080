// Package auth provides JWT-based actor authentication for the HTTP API.
// Tokens carry the actor's identity and role; every protected route resolves
// the requesting actor from the Authorization header before the handler runs.
package auth

import (
	"fmt"
	"strings"
	"time"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v4"
)

const (
	bearerHeader = "Bearer"

	// AuthHeader is the HTTP header carrying the bearer token.
	AuthHeader = "Authorization"
)

// Claims is the JWT payload for an authenticated actor.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// TokenManager issues and verifies actor tokens with a shared HMAC secret.
type TokenManager struct {
	secret   []byte
	tokenTTL time.Duration
}

// NewTokenManager creates a token manager. The secret must be non-empty.
func NewTokenManager(secret string, tokenTTL time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is empty")
	}

	return &TokenManager{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}, nil
}

// BuildJWTString creates a signed token for the given actor.
func (m *TokenManager) BuildJWTString(a actor.Actor) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.tokenTTL)),
		},
		UserID: a.ID().String(),
		Role:   a.Role().String(),
	})

	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("error while signing token: %w", err)
	}

	return tokenString, nil
}

// ActorFromToken verifies the token string and reconstructs the actor.
func (m *TokenManager) ActorFromToken(tokenString string) (actor.Actor, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return actor.Actor{}, fmt.Errorf("error while parsing token: %w", err)
	}

	if !token.Valid {
		return actor.Actor{}, fmt.Errorf("token is invalid")
	}

	userID, err := kernel.UUIDFromString(claims.UserID)
	if err != nil {
		return actor.Actor{}, fmt.Errorf("invalid user id in token: %w", err)
	}

	role, err := actor.RoleFromString(claims.Role)
	if err != nil {
		return actor.Actor{}, fmt.Errorf("invalid role in token: %w", err)
	}

	return actor.NewActor(userID, role)
}

// ActorFromAuthHeader extracts the bearer token from the Authorization header
// value and resolves the actor.
func (m *TokenManager) ActorFromAuthHeader(header string) (actor.Actor, error) {
	headerParts := strings.Split(header, " ")
	if len(headerParts) != 2 {
		return actor.Actor{}, fmt.Errorf("auth header doesn't contain two parts")
	}

	if headerParts[0] != bearerHeader {
		return actor.Actor{}, fmt.Errorf("first auth header part is invalid")
	}

	return m.ActorFromToken(headerParts[1])
}
