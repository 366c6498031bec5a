package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/campus-reports/campus-reports-backend/internal/dto"
	"github.com/campus-reports/campus-reports-backend/internal/http/handlers/common"
	"github.com/campus-reports/campus-reports-backend/internal/logger"
	"github.com/campus-reports/campus-reports-backend/internal/repository"
	"github.com/campus-reports/campus-reports-backend/internal/service"
	"github.com/campus-reports/campus-reports-backend/internal/validation"
)

// DashboardHandler — панель сотрудников: список, карточка и мутации жалоб.
type DashboardHandler struct {
	triage *service.TriageService
}

// NewDashboardHandler создаёт хэндлер.
func NewDashboardHandler(triage *service.TriageService) *DashboardHandler {
	return &DashboardHandler{triage: triage}
}

// ListReports обрабатывает GET /api/dashboard/reports.
// Фильтры: status, category, severity, assigned_to, search; пагинация page/limit.
func (h *DashboardHandler) ListReports(c *gin.Context) {
	filter := repository.ReportFilter{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Severity: c.Query("severity"),
		Search:   c.Query("search"),
	}
	if raw := c.Query("assigned_to"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filter.AssignedTo = id
		}
	}

	page := common.ParseIntQuery(c, "page", 1)
	limit := common.ParseIntQuery(c, "limit", 10)

	result, err := h.triage.List(c.Request.Context(), filter, page, limit)
	if err != nil {
		common.RespondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, dto.ReportListResponse{
		Success: true,
		Reports: result.Reports,
		Pagination: dto.Pagination{
			Page:  result.Page,
			Limit: result.Limit,
			Total: result.Total,
			Pages: result.Pages,
		},
	})
}

// GetReport обрабатывает GET /api/dashboard/reports/:reportId.
func (h *DashboardHandler) GetReport(c *gin.Context) {
	report, history, err := h.triage.Get(c.Request.Context(), c.Param("reportId"))
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			common.RespondNotFound(c, "жалоба не найдена")
			return
		}
		common.RespondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, dto.ReportDetailResponse{
		Success: true,
		Report:  dto.ReportDetail{Report: report, History: history},
	})
}

// UpdateStatus обрабатывает PATCH /api/dashboard/reports/:reportId/status.
func (h *DashboardHandler) UpdateStatus(c *gin.Context) {
	claims, err := common.CurrentClaims(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, "статус обязателен")
		return
	}

	if err := h.triage.SetStatus(c.Request.Context(), c.Param("reportId"), req.Status, claims.UserID); err != nil {
		h.respondMutationError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "статус обновлён"})
}

// Assign обрабатывает PATCH /api/dashboard/reports/:reportId/assign.
func (h *DashboardHandler) Assign(c *gin.Context) {
	claims, err := common.CurrentClaims(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	var req dto.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, "идентификатор назначаемого сотрудника обязателен")
		return
	}

	if err := h.triage.Assign(c.Request.Context(), c.Param("reportId"), req.AssignedTo, claims.UserID); err != nil {
		h.respondMutationError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "жалоба назначена"})
}

// Escalate обрабатывает PATCH /api/dashboard/reports/:reportId/escalate.
func (h *DashboardHandler) Escalate(c *gin.Context) {
	claims, err := common.CurrentClaims(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	var req dto.EscalateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, "идентификатор сотрудника для эскалации обязателен")
		return
	}

	if err := h.triage.Escalate(c.Request.Context(), c.Param("reportId"), req.EscalatedTo, claims.UserID); err != nil {
		h.respondMutationError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "жалоба эскалирована"})
}

// Respond обрабатывает PATCH /api/dashboard/reports/:reportId/respond.
func (h *DashboardHandler) Respond(c *gin.Context) {
	claims, err := common.CurrentClaims(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	var req dto.RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, "текст ответа обязателен")
		return
	}

	if err := h.triage.Respond(c.Request.Context(), c.Param("reportId"), req.Response, claims.UserID); err != nil {
		h.respondMutationError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "ответ добавлен"})
}

// respondMutationError раскладывает ошибку мутации по HTTP кодам.
func (h *DashboardHandler) respondMutationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrReportNotFound):
		common.RespondNotFound(c, "жалоба не найдена")
	case validation.IsError(err):
		common.RespondBadRequest(c, err.Error())
	default:
		if logger.Log != nil {
			logger.Log.WithFields(logrus.Fields{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			}).Error("dashboard handler: ошибка мутации")
		}
		common.RespondInternalError(c)
	}
}
