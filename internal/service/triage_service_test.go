package service

import (
	"context"
	"testing"

	"github.com/campus-reports/campus-reports-backend/internal/models"
	"github.com/campus-reports/campus-reports-backend/internal/repository"
	"github.com/campus-reports/campus-reports-backend/internal/validation"
)

// mockTriageRepository фиксирует вызовы мутаций и отдаёт заранее
// подготовленный список жалоб.
type mockTriageRepository struct {
	reports    []models.Report
	total      int
	lastFilter repository.ReportFilter

	statusCalls  int
	lastStatus   string
	assignCalls  int
	lastAssignee int64
	respondCalls int
	lastResponse string
}

func (m *mockTriageRepository) GetByReportID(ctx context.Context, reportID string) (*models.Report, error) {
	for i := range m.reports {
		if m.reports[i].ReportID == reportID {
			return &m.reports[i], nil
		}
	}
	return nil, repository.ErrReportNotFound
}

func (m *mockTriageRepository) List(ctx context.Context, f repository.ReportFilter) ([]models.Report, int, error) {
	m.lastFilter = f
	return m.reports, m.total, nil
}

func (m *mockTriageRepository) UpdateStatus(ctx context.Context, reportID, status string, actorID int64) error {
	m.statusCalls++
	m.lastStatus = status
	return nil
}

func (m *mockTriageRepository) Assign(ctx context.Context, reportID string, assigneeID, actorID int64) error {
	m.assignCalls++
	m.lastAssignee = assigneeID
	return nil
}

func (m *mockTriageRepository) Escalate(ctx context.Context, reportID string, escalateeID, actorID int64) error {
	return nil
}

func (m *mockTriageRepository) Respond(ctx context.Context, reportID, response string, actorID int64) error {
	m.respondCalls++
	m.lastResponse = response
	return nil
}

type mockTriageHistoryRepository struct {
	history []models.ReportHistory
}

func (m *mockTriageHistoryRepository) ListByReportWithActors(ctx context.Context, reportID int64) ([]models.ReportHistory, error) {
	return m.history, nil
}

func TestTriageService_List_Pagination(t *testing.T) {
	repo := &mockTriageRepository{total: 25}
	svc := NewTriageService(repo, &mockTriageHistoryRepository{})

	page, err := svc.List(context.Background(), repository.ReportFilter{}, 2, 10)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}

	if page.Pages != 3 {
		t.Fatalf("для 25 жалоб по 10 ожидалось 3 страницы, получили %d", page.Pages)
	}
	if repo.lastFilter.Offset != 10 || repo.lastFilter.Limit != 10 {
		t.Fatalf("ожидался offset 10 и limit 10, получили %d/%d", repo.lastFilter.Offset, repo.lastFilter.Limit)
	}
}

func TestTriageService_List_ClampsArguments(t *testing.T) {
	repo := &mockTriageRepository{}
	svc := NewTriageService(repo, &mockTriageHistoryRepository{})

	page, err := svc.List(context.Background(), repository.ReportFilter{}, -3, 1000)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}

	if page.Page != 1 {
		t.Fatalf("номер страницы должен приводиться к 1, получили %d", page.Page)
	}
	if page.Limit != 100 {
		t.Fatalf("limit должен ограничиваться 100, получили %d", page.Limit)
	}
}

func TestTriageService_SetStatus_RejectsUnknown(t *testing.T) {
	repo := &mockTriageRepository{}
	svc := NewTriageService(repo, &mockTriageHistoryRepository{})

	err := svc.SetStatus(context.Background(), "RPT-1-AAAAA", "archived", 1)
	if !validation.IsError(err) {
		t.Fatalf("ожидалась ошибка валидации статуса, получили %v", err)
	}
	if repo.statusCalls != 0 {
		t.Fatalf("хранилище не должно вызываться при неизвестном статусе")
	}
}

func TestTriageService_SetStatus(t *testing.T) {
	repo := &mockTriageRepository{}
	svc := NewTriageService(repo, &mockTriageHistoryRepository{})

	if err := svc.SetStatus(context.Background(), "RPT-1-AAAAA", models.StatusResolved, 1); err != nil {
		t.Fatalf("set status returned error: %v", err)
	}
	if repo.statusCalls != 1 || repo.lastStatus != models.StatusResolved {
		t.Fatalf("ожидался один вызов со статусом %q", models.StatusResolved)
	}
}

func TestTriageService_Assign_RequiresAssignee(t *testing.T) {
	repo := &mockTriageRepository{}
	svc := NewTriageService(repo, &mockTriageHistoryRepository{})

	if err := svc.Assign(context.Background(), "RPT-1-AAAAA", 0, 1); err == nil {
		t.Fatalf("назначение без сотрудника должно отклоняться")
	}
	if repo.assignCalls != 0 {
		t.Fatalf("хранилище не должно вызываться без назначаемого сотрудника")
	}

	if err := svc.Assign(context.Background(), "RPT-1-AAAAA", 5, 1); err != nil {
		t.Fatalf("assign returned error: %v", err)
	}
	if repo.lastAssignee != 5 {
		t.Fatalf("ожидалось назначение сотрудника 5, получили %d", repo.lastAssignee)
	}
}

func TestTriageService_Respond_TrimsResponse(t *testing.T) {
	repo := &mockTriageRepository{}
	svc := NewTriageService(repo, &mockTriageHistoryRepository{})

	if err := svc.Respond(context.Background(), "RPT-1-AAAAA", "  Вопрос решён, протечка устранена.  ", 1); err != nil {
		t.Fatalf("respond returned error: %v", err)
	}
	if repo.lastResponse != "Вопрос решён, протечка устранена." {
		t.Fatalf("ответ не обрезан: %q", repo.lastResponse)
	}
}

func TestTriageService_Respond_RejectsEmpty(t *testing.T) {
	repo := &mockTriageRepository{}
	svc := NewTriageService(repo, &mockTriageHistoryRepository{})

	err := svc.Respond(context.Background(), "RPT-1-AAAAA", "   ", 1)
	if !validation.IsError(err) {
		t.Fatalf("ожидалась ошибка валидации ответа, получили %v", err)
	}
	if repo.respondCalls != 0 {
		t.Fatalf("хранилище не должно вызываться при пустом ответе")
	}
}
