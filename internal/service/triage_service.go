package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/campus-reports/campus-reports-backend/internal/models"
	"github.com/campus-reports/campus-reports-backend/internal/repository"
	"github.com/campus-reports/campus-reports-backend/internal/validation"
)

// TriageRepository описывает зависимости TriageService от слоя хранилища.
type TriageRepository interface {
	GetByReportID(ctx context.Context, reportID string) (*models.Report, error)
	List(ctx context.Context, f repository.ReportFilter) ([]models.Report, int, error)
	UpdateStatus(ctx context.Context, reportID, status string, actorID int64) error
	Assign(ctx context.Context, reportID string, assigneeID, actorID int64) error
	Escalate(ctx context.Context, reportID string, escalateeID, actorID int64) error
	Respond(ctx context.Context, reportID, response string, actorID int64) error
}

// TriageHistoryRepository отдаёт журнал с именами авторов изменений.
type TriageHistoryRepository interface {
	ListByReportWithActors(ctx context.Context, reportID int64) ([]models.ReportHistory, error)
}

// TriageService — работа сотрудников с жалобами: смена статуса,
// назначение, эскалация, ответ. Каждая мутация перезаписывает текущее
// состояние (last-write-wins) и добавляет запись в журнал.
type TriageService struct {
	reports TriageRepository
	history TriageHistoryRepository
}

// NewTriageService создаёт сервис триажа.
func NewTriageService(reports TriageRepository, history TriageHistoryRepository) *TriageService {
	return &TriageService{reports: reports, history: history}
}

// ReportPage — страница списка жалоб.
type ReportPage struct {
	Reports []models.Report
	Page    int
	Limit   int
	Total   int
	Pages   int
}

// List возвращает страницу жалоб под необязательными фильтрами.
func (s *TriageService) List(ctx context.Context, f repository.ReportFilter, page, limit int) (*ReportPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	f.Limit = limit
	f.Offset = (page - 1) * limit

	reports, total, err := s.reports.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("triage service: не удалось получить список жалоб: %w", err)
	}

	pages := total / limit
	if total%limit != 0 {
		pages++
	}

	return &ReportPage{
		Reports: reports,
		Page:    page,
		Limit:   limit,
		Total:   total,
		Pages:   pages,
	}, nil
}

// Get возвращает жалобу с журналом для панели сотрудников.
// Код доступа не требуется — это осознанная асимметрия с анонимным доступом.
func (s *TriageService) Get(ctx context.Context, reportID string) (*models.Report, []models.ReportHistory, error) {
	report, err := s.reports.GetByReportID(ctx, reportID)
	if err != nil {
		return nil, nil, err
	}

	history, err := s.history.ListByReportWithActors(ctx, report.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("triage service: не удалось загрузить журнал: %w", err)
	}

	return report, history, nil
}

// SetStatus перезаписывает статус. Принимается любое из семи значений
// независимо от текущего статуса, порядок переходов не контролируется.
func (s *TriageService) SetStatus(ctx context.Context, reportID, status string, actorID int64) error {
	if err := validation.ValidateStatus(status); err != nil {
		return err
	}
	return s.reports.UpdateStatus(ctx, reportID, status, actorID)
}

// Assign назначает жалобу сотруднику и переводит её в статус assigned.
func (s *TriageService) Assign(ctx context.Context, reportID string, assigneeID, actorID int64) error {
	if assigneeID <= 0 {
		return fmt.Errorf("идентификатор назначаемого сотрудника обязателен")
	}
	return s.reports.Assign(ctx, reportID, assigneeID, actorID)
}

// Escalate передаёт жалобу выше и переводит её в статус escalated.
func (s *TriageService) Escalate(ctx context.Context, reportID string, escalateeID, actorID int64) error {
	if escalateeID <= 0 {
		return fmt.Errorf("идентификатор сотрудника для эскалации обязателен")
	}
	return s.reports.Escalate(ctx, reportID, escalateeID, actorID)
}

// Respond сохраняет официальный ответ, не меняя статус жалобы.
func (s *TriageService) Respond(ctx context.Context, reportID, response string, actorID int64) error {
	if err := validation.ValidateResponse(response); err != nil {
		return err
	}
	return s.reports.Respond(ctx, reportID, strings.TrimSpace(response), actorID)
}
