package middleware

import (
	"autocatalog/internal/entity"
	"autocatalog/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextUserIDKey = "auth_user_id"
	contextRoleKey   = "auth_role"
)

func SetAuthContext(c echo.Context, userID uuid.UUID, role entity.Role) {
	c.Set(contextUserIDKey, userID)
	c.Set(contextRoleKey, role)
}

func UserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	value := c.Get(contextUserIDKey)
	userID, ok := value.(uuid.UUID)
	return userID, ok
}

func RoleFromContext(c echo.Context) (entity.Role, bool) {
	value := c.Get(contextRoleKey)
	role, ok := value.(entity.Role)
	return role, ok
}

func ClaimsFromContext(c echo.Context) (service.SessionClaims, bool) {
	userID, ok := UserIDFromContext(c)
	if !ok {
		return service.SessionClaims{}, false
	}
	role, ok := RoleFromContext(c)
	if !ok {
		return service.SessionClaims{}, false
	}
	return service.SessionClaims{UserID: userID, Role: role}, true
}
