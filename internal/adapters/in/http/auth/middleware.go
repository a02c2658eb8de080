package auth

import (
	"net/http"

	"storefront/internal/core/domain/model/actor"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// actorContextKey is the echo context key holding the authenticated actor.
const actorContextKey = "auth.actor"

// Middleware authenticates every request with the token manager and stores
// the resolved actor in the request context. Requests without a valid bearer
// token are rejected with 401 before reaching the handler.
func Middleware(tokens *TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(AuthHeader)
			if header == "" {
				zap.L().Info("authorization header is empty")

				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			a, err := tokens.ActorFromAuthHeader(header)
			if err != nil {
				zap.L().Error("error while parsing auth header", zap.Error(err))

				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(actorContextKey, a)
			return next(c)
		}
	}
}

// RequireAdmin rejects requests from non-admin actors with 403. Must run
// after Middleware.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			a, err := ActorFromContext(c)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
			}

			if !a.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, "admin role required")
			}

			return next(c)
		}
	}
}

// ActorFromContext returns the actor stored by Middleware.
func ActorFromContext(c echo.Context) (actor.Actor, error) {
	a, ok := c.Get(actorContextKey).(actor.Actor)
	if !ok {
		return actor.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}

	if err := a.Validate(); err != nil {
		return actor.Actor{}, err
	}

	return a, nil
}
