package common

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campus-reports/campus-reports-backend/internal/dto"
	"github.com/campus-reports/campus-reports-backend/internal/http/middleware"
	"github.com/campus-reports/campus-reports-backend/internal/service"
)

// ErrClaimsNotFound возвращается, когда в контексте нет клеймов токена.
var ErrClaimsNotFound = errors.New("клеймы токена не найдены в контексте")

// CurrentClaims извлекает клеймы токена из gin контекста.
func CurrentClaims(c *gin.Context) (*service.Claims, error) {
	raw, exists := c.Get(middleware.ContextClaimsKey)
	if !exists {
		return nil, ErrClaimsNotFound
	}

	claims, ok := raw.(*service.Claims)
	if !ok {
		return nil, ErrClaimsNotFound
	}

	return claims, nil
}

// RespondError отправляет конверт ошибки {success: false, message}.
func RespondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Success: false, Message: message})
}

// RespondUnauthorized отправляет 401.
func RespondUnauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "требуется авторизация"
	}
	RespondError(c, http.StatusUnauthorized, message)
}

// RespondNotFound отправляет 404.
func RespondNotFound(c *gin.Context, message string) {
	if message == "" {
		message = "ресурс не найден"
	}
	RespondError(c, http.StatusNotFound, message)
}

// RespondBadRequest отправляет 400.
func RespondBadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "некорректный запрос"
	}
	RespondError(c, http.StatusBadRequest, message)
}

// RespondInternalError отправляет 500 без деталей внутренней ошибки.
func RespondInternalError(c *gin.Context) {
	RespondError(c, http.StatusInternalServerError, "внутренняя ошибка сервера")
}

// ParseIntQuery читает целочисленный query параметр со значением по умолчанию.
func ParseIntQuery(c *gin.Context, key string, fallback int) int {
	if v := c.Query(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}
