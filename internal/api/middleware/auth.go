package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/footleague/football-api/internal/core/ports"
)

// identityKey is the context key under which Auth stores the resolved user.
// Shared by convention with the handler package.
const identityKey = "identity"

// Auth validates the bearer token and resolves it to a live identity.
//
// The identity, including its role, is re-read from the user store on every
// request: a role change or account deletion takes effect immediately rather
// than when the token expires. Every failure mode (missing header, bad
// signature, expired token, deleted subject) produces the same 401.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, err := auth.AuthenticateToken(c.Request().Context(), parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(identityKey, user)
			return next(c)
		}
	}
}
