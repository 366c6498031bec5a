package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/campus-reports/campus-reports-backend/internal/models"
)

type ReportHistoryRepository struct {
	db *sqlx.DB
}

func NewReportHistoryRepository(db *sqlx.DB) *ReportHistoryRepository {
	return &ReportHistoryRepository{db: db}
}

// ListByReport возвращает журнал жалобы без имён авторов —
// представление для анонимного отслеживания.
func (r *ReportHistoryRepository) ListByReport(ctx context.Context, reportID int64) ([]models.ReportHistory, error) {
	history := []models.ReportHistory{}
	err := r.db.SelectContext(ctx, &history, `
		SELECT * FROM report_history WHERE report_id = ? ORDER BY changed_at DESC, id DESC
	`, reportID)
	return history, err
}

// ListByReportWithActors дополняет журнал именами авторов изменений —
// представление для панели сотрудников.
func (r *ReportHistoryRepository) ListByReportWithActors(ctx context.Context, reportID int64) ([]models.ReportHistory, error) {
	history := []models.ReportHistory{}
	err := r.db.SelectContext(ctx, &history, `
		SELECT rh.*, u.full_name AS changed_by_name
		FROM report_history rh
		LEFT JOIN users u ON rh.changed_by = u.id
		WHERE rh.report_id = ?
		ORDER BY rh.changed_at DESC, rh.id DESC
	`, reportID)
	return history, err
}
