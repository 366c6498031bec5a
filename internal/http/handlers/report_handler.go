package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campus-reports/campus-reports-backend/internal/dto"
	"github.com/campus-reports/campus-reports-backend/internal/http/handlers/common"
	"github.com/campus-reports/campus-reports-backend/internal/logger"
	"github.com/campus-reports/campus-reports-backend/internal/models"
	"github.com/campus-reports/campus-reports-backend/internal/service"
	"github.com/campus-reports/campus-reports-backend/internal/validation"
)

// ReportHandler — приём анонимных жалоб и публичные справочники.
type ReportHandler struct {
	intake *service.IntakeService
	stats  *service.StatsService
}

// NewReportHandler создаёт хэндлер.
func NewReportHandler(intake *service.IntakeService, stats *service.StatsService) *ReportHandler {
	return &ReportHandler{intake: intake, stats: stats}
}

// Submit обрабатывает POST /api/reports/submit.
func (h *ReportHandler) Submit(c *gin.Context) {
	var req dto.SubmitReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, "категория, заголовок и описание обязательны")
		return
	}

	result, err := h.intake.Submit(c.Request.Context(), service.SubmitInput{
		Category:     req.Category,
		Subcategory:  req.Subcategory,
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		DateIncident: req.DateIncident,
		TimeIncident: req.TimeIncident,
		Severity:     req.Severity,
	})
	if err != nil {
		if validation.IsError(err) {
			common.RespondBadRequest(c, err.Error())
			return
		}
		if logger.Log != nil {
			logger.Log.WithField("error", err.Error()).Error("report handler: не удалось сохранить жалобу")
		}
		common.RespondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, dto.SubmitReportResponse{
		Success:      true,
		Message:      "жалоба отправлена",
		ReportID:     result.ReportID,
		Passcode:     result.Passcode,
		Instructions: "Сохраните идентификатор жалобы и код доступа, они понадобятся для проверки статуса",
	})
}

// Categories обрабатывает GET /api/reports/categories.
func (h *ReportHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CategoriesResponse{
		Success:    true,
		Categories: models.Categories(),
	})
}

// Stats обрабатывает GET /api/reports/stats.
func (h *ReportHandler) Stats(c *gin.Context) {
	stats, err := h.stats.Summary(c.Request.Context())
	if err != nil {
		common.RespondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, dto.StatsResponse{Success: true, Stats: stats})
}
