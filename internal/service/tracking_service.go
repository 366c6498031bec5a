package service

import (
	"context"
	"fmt"

	"github.com/campus-reports/campus-reports-backend/internal/models"
)

// TrackingRepository описывает зависимости TrackingService от слоя хранилища.
type TrackingRepository interface {
	GetByReportIDAndPasscode(ctx context.Context, reportID, passcode string) (*models.Report, error)
}

// TrackingHistoryRepository отдаёт журнал без имён авторов.
type TrackingHistoryRepository interface {
	ListByReport(ctx context.Context, reportID int64) ([]models.ReportHistory, error)
}

// TrackingService — анонимная проверка статуса жалобы по паре
// идентификатор + код доступа.
type TrackingService struct {
	reports TrackingRepository
	history TrackingHistoryRepository
}

// NewTrackingService создаёт сервис отслеживания.
func NewTrackingService(reports TrackingRepository, history TrackingHistoryRepository) *TrackingService {
	return &TrackingService{reports: reports, history: history}
}

// Track возвращает очищенную проекцию жалобы с полным журналом.
// Неверный идентификатор и неверный код доступа неразличимы для вызывающего:
// репозиторий в обоих случаях возвращает ErrReportNotFound.
func (s *TrackingService) Track(ctx context.Context, reportID, passcode string) (*models.TrackedReport, error) {
	report, err := s.reports.GetByReportIDAndPasscode(ctx, reportID, passcode)
	if err != nil {
		return nil, err
	}

	history, err := s.history.ListByReport(ctx, report.ID)
	if err != nil {
		return nil, fmt.Errorf("tracking service: не удалось загрузить журнал: %w", err)
	}

	return &models.TrackedReport{
		ReportID:     report.ReportID,
		Title:        report.Title,
		Category:     report.Category,
		Subcategory:  report.Subcategory,
		Status:       report.Status,
		Severity:     report.Severity,
		Description:  report.Description,
		Location:     report.Location,
		DateIncident: report.DateIncident,
		TimeIncident: report.TimeIncident,
		CreatedAt:    report.CreatedAt,
		UpdatedAt:    report.UpdatedAt,
		AssignedTo:   report.AssignedToName,
		EscalatedTo:  report.EscalatedToName,
		Response:     report.Response,
		ResponseBy:   report.ResponseByName,
		ResponseAt:   report.ResponseAt,
		History:      history,
	}, nil
}
