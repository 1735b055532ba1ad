package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"records-service/internal/rbac"
	apperrors "records-service/pkg/errors"
)

type Middleware struct {
	jwtService *JWTService
}

func NewMiddleware(jwtService *JWTService) *Middleware {
	return &Middleware{jwtService: jwtService}
}

// RequireJWT authenticates the request. A missing token is a 401; a
// token that fails verification (malformed, bad signature, expired) is
// a 403. On success the decoded claims are attached to the context.
func (m *Middleware) RequireJWT() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractBearerToken(c)
			if token == "" {
				return respondError(c, http.StatusUnauthorized, msgMissingAuthorization)
			}

			claims, err := m.jwtService.Verify(token)
			if err != nil {
				return respondError(c, http.StatusForbidden, msgInvalidOrExpiredToken)
			}

			c.Set(ContextKeyClaims, claims)

			return next(c)
		}
	}
}

// RequirePermission authorizes the authenticated claims against a
// per-route permission level. Must run after RequireJWT.
func (m *Middleware) RequirePermission(required rbac.Level) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := GetClaims(c)
			if err != nil {
				return respondError(c, http.StatusUnauthorized, msgNotAuthenticated)
			}

			if !rbac.Authorize(claims.PermissionLevel, required) {
				return respondError(c, http.StatusForbidden, msgInsufficientPermissions)
			}

			return next(c)
		}
	}
}

// RequireAdmin gates on role alone, not on the permission level.
func (m *Middleware) RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := GetClaims(c)
			if err != nil {
				return respondError(c, http.StatusUnauthorized, msgNotAuthenticated)
			}

			if !rbac.IsAdmin(claims.Role) {
				return respondError(c, http.StatusForbidden, msgAdminOnly)
			}

			return next(c)
		}
	}
}

func extractBearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(headerAuthorization)
	if authHeader == "" {
		return ""
	}

	parts := strings.Fields(authHeader)
	if len(parts) != authHeaderParts || strings.ToLower(parts[0]) != bearerScheme {
		return ""
	}

	return parts[1]
}

func GetClaims(c echo.Context) (*Claims, error) {
	raw := c.Get(ContextKeyClaims)
	if raw == nil {
		return nil, apperrors.Unauthorized(msgNotAuthenticated)
	}

	claims, ok := raw.(*Claims)
	if !ok || claims == nil {
		return nil, apperrors.Unauthorized(msgNotAuthenticated)
	}

	return claims, nil
}

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{jsonKeyError: message})
}
