package routes

import (
	"errors"
	"net/http"
	"strings"

	"evdealer/handlers"
	"evdealer/models"
	"evdealer/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
)

// AuthMiddleware 驗證 JWT token，並提取 staff_id 和 role
func AuthMiddleware(tokens *utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			handlers.AbortWithError(c, http.StatusUnauthorized, "ERR_NO_AUTH_HEADER",
				"Missing Authorization header", "Authorization header is required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			handlers.AbortWithError(c, http.StatusUnauthorized, "ERR_INVALID_AUTH_FORMAT",
				"Invalid Authorization format", "Authorization header must be in the format 'Bearer <token>'")
			return
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			log.Printf("Token parsing error: %v", err)
			if errors.Is(err, jwt.ErrTokenExpired) {
				handlers.AbortWithError(c, http.StatusUnauthorized, "ERR_TOKEN_EXPIRED", "Token has expired", "Token has expired")
				return
			}
			handlers.AbortWithError(c, http.StatusUnauthorized, "ERR_INVALID_TOKEN", "Invalid token", err.Error())
			return
		}

		if claims.Role != models.RoleAdmin && claims.Role != models.RoleSales {
			log.Printf("Missing or invalid role in token: %v", claims.Role)
			handlers.AbortWithError(c, http.StatusUnauthorized, "ERR_INVALID_ROLE", "Invalid role", "Invalid role in token")
			return
		}

		c.Set(handlers.ContextStaffID, claims.StaffID)
		c.Set(handlers.ContextRole, claims.Role)
		c.Next()
	}
}

// RoleMiddleware 檢查員工角色是否符合要求
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(handlers.ContextRole)
		if role == "" {
			handlers.AbortWithError(c, http.StatusUnauthorized, "ERR_ROLE_NOT_FOUND",
				"Unable to determine role", "Role not found in context")
			return
		}

		// 允許 admin 角色訪問所有端點
		if role == models.RoleAdmin {
			c.Next()
			return
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		handlers.AbortWithError(c, http.StatusForbidden, "ERR_INSUFFICIENT_PERMISSIONS",
			"Insufficient permissions", "Insufficient role permissions")
	}
}
