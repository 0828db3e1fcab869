package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/facilitydesk/core/internal/ports"
)

const subjectContextKey = "subject"

// authMiddleware validates bearer tokens issued by the login endpoint
func (s *Server) authMiddleware(authService ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
			}

			scheme, tokenString, found := strings.Cut(authHeader, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || tokenString == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization header format")
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				s.logger.LogSecurityEvent("invalid_token", "", c.RealIP(), map[string]interface{}{
					"error":    err.Error(),
					"endpoint": c.Request().URL.Path,
				})
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			c.Set(subjectContextKey, claims.Subject)

			return next(c)
		}
	}
}

// getSubjectFromContext returns the token subject set by authMiddleware
func getSubjectFromContext(c echo.Context) string {
	subject, ok := c.Get(subjectContextKey).(string)
	if !ok {
		return ""
	}

	return subject
}
