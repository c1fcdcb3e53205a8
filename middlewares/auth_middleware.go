package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/IrfanFared/package-uas/authclient"
)

// pull the token out of the Authorization header
func extractBearer(c echo.Context) (string, error) {
	h := c.Request().Header.Get("Authorization")
	if h == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "MISSING_AUTH_HEADER"})
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "INVALID_AUTH_HEADER"})
	}
	return parts[1], nil
}

// RequireAuth delegates token validation to the auth service. A missing or
// malformed header fails here, before any outbound call. Rejection by the
// auth service and the auth service being down produce different statuses so
// operators can tell them apart.
func RequireAuth(v authclient.Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tok, err := extractBearer(c)
			if err != nil {
				return err
			}
			if err := v.Verify(c.Request().Context(), tok); err != nil {
				if errors.Is(err, authclient.ErrTokenRejected) {
					return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{
						"error":  "INVALID_TOKEN",
						"detail": "token invalid or expired",
					})
				}
				return echo.NewHTTPError(http.StatusServiceUnavailable, map[string]any{
					"error":  "AUTH_SERVICE_UNAVAILABLE",
					"detail": "auth service unreachable",
				})
			}
			// downstream only cares that the token was accepted
			c.Set("token", tok)
			return next(c)
		}
	}
}
