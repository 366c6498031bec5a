package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/campus-reports/campus-reports-backend/internal/http/middleware"
	"github.com/campus-reports/campus-reports-backend/internal/models"
	"github.com/campus-reports/campus-reports-backend/internal/repository"
	"github.com/campus-reports/campus-reports-backend/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// performJSON выполняет запрос с JSON телом против собранного роутера.
func performJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("не удалось сериализовать тело запроса: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var payload map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("не удалось разобрать ответ %q: %v", w.Body.String(), err)
	}
	return payload
}

// withClaims подменяет авторизационный middleware в тестах.
func withClaims(userID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextClaimsKey, &service.Claims{
			UserID:   userID,
			Username: "inspector",
			Role:     models.RoleAuthority,
		})
		c.Next()
	}
}

// stubTrackingRepository хранит одну жалобу для проверки отслеживания.
type stubTrackingRepository struct {
	report *models.Report
}

func (s *stubTrackingRepository) GetByReportIDAndPasscode(ctx context.Context, reportID, passcode string) (*models.Report, error) {
	if s.report != nil && s.report.ReportID == reportID && s.report.Passcode == passcode {
		return s.report, nil
	}
	return nil, repository.ErrReportNotFound
}

type stubHistoryRepository struct {
	history []models.ReportHistory
}

func (s *stubHistoryRepository) ListByReport(ctx context.Context, reportID int64) ([]models.ReportHistory, error) {
	return s.history, nil
}

func (s *stubHistoryRepository) ListByReportWithActors(ctx context.Context, reportID int64) ([]models.ReportHistory, error) {
	return s.history, nil
}

// stubTriageRepository покрывает интерфейс триажа минимальной логикой.
type stubTriageRepository struct {
	report     *models.Report
	lastStatus string
}

func (s *stubTriageRepository) GetByReportID(ctx context.Context, reportID string) (*models.Report, error) {
	if s.report != nil && s.report.ReportID == reportID {
		return s.report, nil
	}
	return nil, repository.ErrReportNotFound
}

func (s *stubTriageRepository) List(ctx context.Context, f repository.ReportFilter) ([]models.Report, int, error) {
	if s.report == nil {
		return []models.Report{}, 0, nil
	}
	return []models.Report{*s.report}, 1, nil
}

func (s *stubTriageRepository) UpdateStatus(ctx context.Context, reportID, status string, actorID int64) error {
	if s.report == nil || s.report.ReportID != reportID {
		return repository.ErrReportNotFound
	}
	s.lastStatus = status
	return nil
}

func (s *stubTriageRepository) Assign(ctx context.Context, reportID string, assigneeID, actorID int64) error {
	if s.report == nil || s.report.ReportID != reportID {
		return repository.ErrReportNotFound
	}
	return nil
}

func (s *stubTriageRepository) Escalate(ctx context.Context, reportID string, escalateeID, actorID int64) error {
	if s.report == nil || s.report.ReportID != reportID {
		return repository.ErrReportNotFound
	}
	return nil
}

func (s *stubTriageRepository) Respond(ctx context.Context, reportID, response string, actorID int64) error {
	if s.report == nil || s.report.ReportID != reportID {
		return repository.ErrReportNotFound
	}
	return nil
}

// stubIntakeRepository принимает любую жалобу.
type stubIntakeRepository struct {
	created *models.Report
}

func (s *stubIntakeRepository) Create(ctx context.Context, report *models.Report) error {
	report.ID = 1
	report.Status = models.StatusPending
	s.created = report
	return nil
}

func sampleReport() *models.Report {
	return &models.Report{
		ID:          1,
		ReportID:    "RPT-1700000000000-AB12C",
		Passcode:    "AB12CD34",
		Category:    "facilities",
		Title:       "Протечка в общежитии",
		Description: "В комнате 214 третий день течёт потолок после дождя.",
		Severity:    models.SeverityMedium,
		Status:      models.StatusPending,
	}
}

func checkStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("ожидался статус %d, получили %d: %s", want, w.Code, w.Body.String())
	}
}

func checkEnvelope(t *testing.T, payload map[string]interface{}, success bool) {
	t.Helper()
	if payload["success"] != success {
		t.Fatalf("ожидался success=%v, получили %v", success, payload["success"])
	}
}
