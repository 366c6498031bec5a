package service

import (
	"context"
	"fmt"

	"github.com/campus-reports/campus-reports-backend/internal/models"
)

// recentDays — окно "свежих" жалоб для сводки.
const recentDays = 7

// StatsRepository описывает зависимости StatsService от слоя хранилища.
type StatsRepository interface {
	TotalReports(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context) ([]models.StatusCount, error)
	CountByCategory(ctx context.Context) ([]models.CategoryCount, error)
	CountRecent(ctx context.Context, days int) (int, error)
}

// StatsService собирает сводку по жалобам. Чистое чтение, без кэширования.
type StatsService struct {
	repo StatsRepository
}

// NewStatsService создаёт сервис статистики.
func NewStatsService(repo StatsRepository) *StatsService {
	return &StatsService{repo: repo}
}

// Summary возвращает агрегаты: всего, по статусам, по категориям, за неделю.
func (s *StatsService) Summary(ctx context.Context) (*models.ReportStats, error) {
	total, err := s.repo.TotalReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats service: не удалось посчитать жалобы: %w", err)
	}

	byStatus, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats service: не удалось сгруппировать по статусам: %w", err)
	}

	byCategory, err := s.repo.CountByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats service: не удалось сгруппировать по категориям: %w", err)
	}

	recent, err := s.repo.CountRecent(ctx, recentDays)
	if err != nil {
		return nil, fmt.Errorf("stats service: не удалось посчитать свежие жалобы: %w", err)
	}

	return &models.ReportStats{
		Total:      total,
		ByStatus:   byStatus,
		ByCategory: byCategory,
		Recent:     recent,
	}, nil
}
