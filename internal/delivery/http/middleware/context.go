package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UserIDFromContext reads the authenticated user's ID set by Authenticate.
func UserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(ContextKeyUserID).(uuid.UUID)

	return userID, ok
}

// TenantIDFromContext reads the caller's tenant ID set by ResolveTenant.
func TenantIDFromContext(c echo.Context) (uuid.UUID, bool) {
	tenantID, ok := c.Get(ContextKeyTenantID).(uuid.UUID)

	return tenantID, ok
}
