package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campus-reports/campus-reports-backend/internal/dto"
	"github.com/campus-reports/campus-reports-backend/internal/http/handlers/common"
	"github.com/campus-reports/campus-reports-backend/internal/models"
	"github.com/campus-reports/campus-reports-backend/internal/repository"
	"github.com/campus-reports/campus-reports-backend/internal/service"
)

// TrackingHandler — анонимная проверка статуса жалобы.
type TrackingHandler struct {
	tracking *service.TrackingService
}

// NewTrackingHandler создаёт хэндлер.
func NewTrackingHandler(tracking *service.TrackingService) *TrackingHandler {
	return &TrackingHandler{tracking: tracking}
}

// Track обрабатывает POST /api/tracking/status.
func (h *TrackingHandler) Track(c *gin.Context) {
	var req dto.TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, "идентификатор жалобы и код доступа обязательны")
		return
	}

	report, err := h.tracking.Track(c.Request.Context(), req.ReportID, req.Passcode)
	if err != nil {
		// Одинаковый 404 и для неверного идентификатора, и для неверного
		// кода доступа: ответ не раскрывает, какое поле не совпало.
		if errors.Is(err, repository.ErrReportNotFound) {
			common.RespondNotFound(c, "жалоба не найдена или неверный код доступа")
			return
		}
		common.RespondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, dto.TrackResponse{Success: true, Report: report})
}

// StatusOptions обрабатывает GET /api/tracking/status-options.
func (h *TrackingHandler) StatusOptions(c *gin.Context) {
	c.JSON(http.StatusOK, dto.StatusOptionsResponse{
		Success:       true,
		StatusOptions: models.StatusOptions(),
	})
}
