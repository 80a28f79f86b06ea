package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/footleague/football-api/internal/core/domain"
)

// RBAC enforces that the identity resolved by Auth holds one of the allowed
// roles. Set membership, not ordering: adding a role to the system never
// silently widens an existing check.
//
// A request with no identity fails 401 (Auth did not run or did not pass); an
// identified caller with the wrong role fails 403. The two are distinguishable
// on purpose: role is not a secret once identity is established.
func RBAC(allowed ...domain.Role) echo.MiddlewareFunc {
	set := make(map[domain.Role]struct{}, len(allowed))
	for _, r := range allowed {
		set[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, _ := c.Get(identityKey).(*domain.User)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if _, ok := set[user.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
