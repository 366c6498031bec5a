package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/campus-reports/campus-reports-backend/internal/models"
)

type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) TotalReports(ctx context.Context) (int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM reports`)
	return total, err
}

func (r *StatsRepository) CountByStatus(ctx context.Context) ([]models.StatusCount, error) {
	counts := []models.StatusCount{}
	err := r.db.SelectContext(ctx, &counts, `
		SELECT status, COUNT(*) AS count FROM reports GROUP BY status
	`)
	return counts, err
}

func (r *StatsRepository) CountByCategory(ctx context.Context) ([]models.CategoryCount, error) {
	counts := []models.CategoryCount{}
	err := r.db.SelectContext(ctx, &counts, `
		SELECT category, COUNT(*) AS count FROM reports GROUP BY category
	`)
	return counts, err
}

// CountRecent считает жалобы за последние days дней.
func (r *StatsRepository) CountRecent(ctx context.Context, days int) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(*) FROM reports WHERE created_at >= datetime('now', ?)
	`, fmt.Sprintf("-%d days", days))
	return count, err
}
