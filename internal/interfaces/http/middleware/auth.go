package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"leadloft/internal/infrastructure/auth"
	"leadloft/internal/shared/constants"
	"leadloft/internal/shared/logger"
	"leadloft/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth verifies the bearer token and puts the tenant identity on
// the request context. Handlers read the agency ID from there and never
// from the request body.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyAgencyID, claims.AgencyID)
		c.Set(constants.ContextKeyUserRole, claims.Role)

		c.Next()
	}
}

// RequireOwner allows only the agency owner through. Must run after
// RequireAuth.
func (m *AuthMiddleware) RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(constants.ContextKeyUserRole)
		if role != constants.RoleOwner {
			utils.ErrorResponse(c, http.StatusForbidden, "owner role required")
			c.Abort()
			return
		}

		c.Next()
	}
}

// AgencyID reads the authenticated agency from the Gin context.
func AgencyID(c *gin.Context) uint {
	if v, exists := c.Get(constants.ContextKeyAgencyID); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// UserID reads the authenticated user from the Gin context.
func UserID(c *gin.Context) uint {
	if v, exists := c.Get(constants.ContextKeyUserID); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
