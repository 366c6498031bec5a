package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campus-reports/campus-reports-backend/internal/dto"
	"github.com/campus-reports/campus-reports-backend/internal/service"
)

// Context ключи для gin.Context.
const (
	ContextClaimsKey = "claims"
)

// AuthMiddleware проверяет JWT access токен и кладёт клеймы в контекст.
// Ставится перед каждым маршрутом, доступным только сотрудникам.
func AuthMiddleware(tokens *service.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "требуется авторизация"})
			return
		}

		raw := strings.TrimPrefix(auth, "Bearer ")
		claims, err := tokens.Parse(raw)
		if err != nil || claims.UserID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "токен невалиден или истёк"})
			return
		}

		c.Set(ContextClaimsKey, claims)
		c.Next()
	}
}
