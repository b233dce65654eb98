package middleware

import (
	"strings"

	"hms/dto"
	"hms/response"
	"hms/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware xử lý authentication
func AuthMiddleware(roles ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		actor, err := services.ActorFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Kiểm tra role nếu có yêu cầu
		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == actor.Role {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		// Lưu actor vào context
		c.Set("actor", actor)
		c.Next()
	}
}

// GetActor lấy actor đã xác thực từ context
func GetActor(c *gin.Context) dto.Actor {
	value, exists := c.Get("actor")
	if !exists {
		return dto.Actor{}
	}
	actor, ok := value.(dto.Actor)
	if !ok {
		return dto.Actor{}
	}
	return actor
}
