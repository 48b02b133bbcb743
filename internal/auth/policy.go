package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HasRoles reports whether the claims carry every required role name.
func HasRoles(claims *Claims, required ...string) bool {
	if claims == nil {
		return false
	}
	held := make(map[string]struct{}, len(claims.Roles))
	for _, r := range claims.Roles {
		held[r] = struct{}{}
	}
	for _, r := range required {
		if _, ok := held[r]; !ok {
			return false
		}
	}
	return true
}

// RequireRoles gates a route on the verified token carrying every listed role.
// The check runs in application code against the claims, not via routing-layer
// annotations, so it is directly testable.
func RequireRoles(required ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := ClaimsFromContext(c)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}
			if !HasRoles(claims, required...) {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}
