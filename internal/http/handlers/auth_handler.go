package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/campus-reports/campus-reports-backend/internal/dto"
	"github.com/campus-reports/campus-reports-backend/internal/http/handlers/common"
	"github.com/campus-reports/campus-reports-backend/internal/logger"
	"github.com/campus-reports/campus-reports-backend/internal/repository"
	"github.com/campus-reports/campus-reports-backend/internal/service"
)

// AuthHandler предоставляет HTTP слой для входа сотрудников.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler создаёт хэндлер.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login обрабатывает POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, "имя пользователя и пароль обязательны")
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			common.RespondUnauthorized(c, service.ErrInvalidCredentials.Error())
			return
		}
		if logger.Log != nil {
			logger.Log.WithFields(logrus.Fields{
				"username": req.Username,
				"error":    err.Error(),
			}).Error("auth handler: ошибка входа")
		}
		common.RespondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		Message: "вход выполнен",
		Token:   token,
		User:    user,
	})
}

// Me обрабатывает GET /api/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	claims, err := common.CurrentClaims(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	user, err := h.auth.CurrentUser(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			common.RespondNotFound(c, "пользователь не найден")
			return
		}
		common.RespondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{Success: true, User: user})
}

// ListUsers обрабатывает GET /api/auth/users — справочник сотрудников
// для назначения и эскалации.
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.auth.ListStaff(c.Request.Context())
	if err != nil {
		common.RespondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, dto.UsersResponse{Success: true, Users: users})
}
