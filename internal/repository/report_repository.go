package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/campus-reports/campus-reports-backend/internal/models"
	"github.com/campus-reports/campus-reports-backend/internal/repository/common"
)

var ErrReportNotFound = errors.New("report not found")

// selectReports — базовый запрос жалобы с именами сотрудников.
const selectReports = `
	SELECT
		r.*,
		u1.full_name AS assigned_to_name,
		u2.full_name AS escalated_to_name,
		u3.full_name AS response_by_name
	FROM reports r
	LEFT JOIN users u1 ON r.assigned_to = u1.id
	LEFT JOIN users u2 ON r.escalated_to = u2.id
	LEFT JOIN users u3 ON r.response_by = u3.id
`

type ReportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create сохраняет новую жалобу и запись 'created' в журнале одной транзакцией.
func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	return common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO reports (
				report_id, passcode, category, subcategory, title, description,
				location, date_incident, time_incident, severity
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			RETURNING id, status, created_at, updated_at
		`, report.ReportID, report.Passcode, report.Category, report.Subcategory,
			report.Title, report.Description, report.Location,
			report.DateIncident, report.TimeIncident, report.Severity).
			Scan(&report.ID, &report.Status, &report.CreatedAt, &report.UpdatedAt)
		if err != nil {
			return fmt.Errorf("insert report: %w", err)
		}

		return insertHistory(ctx, tx, report.ID, "created", nil, strPtr("Жалоба подана"), nil)
	})
}

// GetByReportID возвращает жалобу по публичному идентификатору.
// Passcode не требуется: доступ сотрудников к жалобе им не ограничен.
func (r *ReportRepository) GetByReportID(ctx context.Context, reportID string) (*models.Report, error) {
	var report models.Report
	err := r.db.GetContext(ctx, &report, selectReports+` WHERE r.report_id = ?`, reportID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReportNotFound
	}
	return &report, err
}

// GetByReportIDAndPasscode требует точного совпадения обоих полей.
// При любом несовпадении возвращается одна и та же ошибка ErrReportNotFound,
// не раскрывающая, какое из полей неверно.
func (r *ReportRepository) GetByReportIDAndPasscode(ctx context.Context, reportID, passcode string) (*models.Report, error) {
	var report models.Report
	err := r.db.GetContext(ctx, &report, selectReports+` WHERE r.report_id = ? AND r.passcode = ?`, reportID, passcode)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReportNotFound
	}
	return &report, err
}

// ReportFilter описывает необязательные фильтры списка жалоб.
type ReportFilter struct {
	Status     string
	Category   string
	Severity   string
	AssignedTo int64
	Search     string
	Limit      int
	Offset     int
}

// List возвращает страницу жалоб и общее количество под теми же фильтрами.
func (r *ReportRepository) List(ctx context.Context, f ReportFilter) ([]models.Report, int, error) {
	where := filterConditions(f)

	countQuery, countArgs, err := sq.Select("COUNT(*)").From("reports r").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count reports: %w", err)
	}

	query, args, err := sq.
		Select(
			"r.*",
			"u1.full_name AS assigned_to_name",
			"u2.full_name AS escalated_to_name",
			"u3.full_name AS response_by_name",
		).
		From("reports r").
		LeftJoin("users u1 ON r.assigned_to = u1.id").
		LeftJoin("users u2 ON r.escalated_to = u2.id").
		LeftJoin("users u3 ON r.response_by = u3.id").
		Where(where).
		OrderBy("r.created_at DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	reports := []models.Report{}
	if err := r.db.SelectContext(ctx, &reports, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list reports: %w", err)
	}

	return reports, total, nil
}

func filterConditions(f ReportFilter) sq.And {
	where := sq.And{}
	if f.Status != "" {
		where = append(where, sq.Eq{"r.status": f.Status})
	}
	if f.Category != "" {
		where = append(where, sq.Eq{"r.category": f.Category})
	}
	if f.Severity != "" {
		where = append(where, sq.Eq{"r.severity": f.Severity})
	}
	if f.AssignedTo != 0 {
		where = append(where, sq.Eq{"r.assigned_to": f.AssignedTo})
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		where = append(where, sq.Or{
			sq.Like{"r.title": pattern},
			sq.Like{"r.description": pattern},
			sq.Like{"r.report_id": pattern},
		})
	}
	return where
}

// UpdateStatus перезаписывает статус и добавляет запись 'status_updated'.
// Допустимость значения проверяет сервисный слой.
func (r *ReportRepository) UpdateStatus(ctx context.Context, reportID, status string, actorID int64) error {
	return r.mutate(ctx, reportID, func(tx *sqlx.Tx, id int64, oldStatus string) error {
		if _, err := tx.ExecContext(ctx, `
			UPDATE reports SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
		`, status, id); err != nil {
			return fmt.Errorf("update status: %w", err)
		}
		return insertHistory(ctx, tx, id, "status_updated", &oldStatus, &status, &actorID)
	})
}

// Assign назначает жалобу сотруднику и принудительно переводит её в статус assigned.
func (r *ReportRepository) Assign(ctx context.Context, reportID string, assigneeID, actorID int64) error {
	return r.mutate(ctx, reportID, func(tx *sqlx.Tx, id int64, oldStatus string) error {
		if _, err := tx.ExecContext(ctx, `
			UPDATE reports
			SET assigned_to = ?, assigned_by = ?, assigned_at = CURRENT_TIMESTAMP,
			    status = 'assigned', updated_at = CURRENT_TIMESTAMP
			WHERE id = ?
		`, assigneeID, actorID, id); err != nil {
			return fmt.Errorf("assign report: %w", err)
		}
		newValue := strconv.FormatInt(assigneeID, 10)
		return insertHistory(ctx, tx, id, "assigned", nil, &newValue, &actorID)
	})
}

// Escalate передаёт жалобу выше и принудительно переводит её в статус escalated.
func (r *ReportRepository) Escalate(ctx context.Context, reportID string, escalateeID, actorID int64) error {
	return r.mutate(ctx, reportID, func(tx *sqlx.Tx, id int64, oldStatus string) error {
		if _, err := tx.ExecContext(ctx, `
			UPDATE reports
			SET escalated_to = ?, escalated_by = ?, escalated_at = CURRENT_TIMESTAMP,
			    status = 'escalated', updated_at = CURRENT_TIMESTAMP
			WHERE id = ?
		`, escalateeID, actorID, id); err != nil {
			return fmt.Errorf("escalate report: %w", err)
		}
		newValue := strconv.FormatInt(escalateeID, 10)
		return insertHistory(ctx, tx, id, "escalated", nil, &newValue, &actorID)
	})
}

// Respond сохраняет официальный ответ. Статус жалобы не меняется.
func (r *ReportRepository) Respond(ctx context.Context, reportID, response string, actorID int64) error {
	return r.mutate(ctx, reportID, func(tx *sqlx.Tx, id int64, oldStatus string) error {
		if _, err := tx.ExecContext(ctx, `
			UPDATE reports
			SET response = ?, response_by = ?, response_at = CURRENT_TIMESTAMP,
			    updated_at = CURRENT_TIMESTAMP
			WHERE id = ?
		`, response, actorID, id); err != nil {
			return fmt.Errorf("respond to report: %w", err)
		}
		return insertHistory(ctx, tx, id, "responded", nil, strPtr("Ответ добавлен"), &actorID)
	})
}

// mutate выполняет изменение жалобы вместе с записью в журнал одной
// транзакцией: запись в журнале не появляется без самого изменения.
func (r *ReportRepository) mutate(ctx context.Context, reportID string, fn func(tx *sqlx.Tx, id int64, oldStatus string) error) error {
	return common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		var row struct {
			ID     int64  `db:"id"`
			Status string `db:"status"`
		}
		err := tx.GetContext(ctx, &row, `SELECT id, status FROM reports WHERE report_id = ?`, reportID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrReportNotFound
		}
		if err != nil {
			return fmt.Errorf("lookup report: %w", err)
		}
		return fn(tx, row.ID, row.Status)
	})
}

func insertHistory(ctx context.Context, tx *sqlx.Tx, reportID int64, action string, oldValue, newValue *string, changedBy *int64) error {
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO report_history (report_id, action, old_value, new_value, changed_by)
		VALUES (?, ?, ?, ?, ?)
	`, reportID, action, oldValue, newValue, changedBy); err != nil {
		return fmt.Errorf("insert history: %w", err)
	}
	return nil
}

func strPtr(s string) *string {
	return &s
}
