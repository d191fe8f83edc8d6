package middleware

import (
	"net/http"
	"slices"
	"strings"

	"carttrace/internal/domain/repository"
	"carttrace/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Context keys set by the middleware for handlers to read.
const (
	ContextKeyUserID   = "userID"
	ContextKeyRoles    = "roles"
	ContextKeyTenantID = "tenantID"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc    service.TokenService
	profileRepo repository.ProfileRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, profileRepo repository.ProfileRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, profileRepo: profileRepo}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		// Set user info on the context for handlers to use
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRoles, claims.Roles)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rolesVal := c.Get(ContextKeyRoles)
			roles, ok := rolesVal.([]string)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: role information missing"})
			}

			if !slices.Contains(roles, requiredRole) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: require '" + requiredRole + "' role"})
			}

			return next(c)
		}
	}
}

// ResolveTenant loads the caller's profile and stores the tenant ID on the
// context. Every tenant-scoped route sits behind this, so a handler never
// trusts a tenant ID from the request body or query.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) ResolveTenant(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := UserIDFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "User ID missing from token"})
		}

		profile, err := m.profileRepo.FindByUserID(c.Request().Context(), userID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Account is not provisioned for a tenant"})
			}

			return errors.Wrap(err, "failed to resolve tenant for caller")
		}

		c.Set(ContextKeyTenantID, profile.TenantID)

		return next(c)
	}
}
