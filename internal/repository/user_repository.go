package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/campus-reports/campus-reports-backend/internal/models"
	"github.com/campus-reports/campus-reports-backend/internal/repository/common"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO users (username, password, full_name, role, department, email)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id, created_at, updated_at
	`, user.Username, user.PasswordHash, user.FullName, user.Role, user.Department, user.Email).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return common.GetByField[models.User](ctx, r.db, "users", "id", id, ErrUserNotFound)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return common.GetByField[models.User](ctx, r.db, "users", "username", username, ErrUserNotFound)
}

// ListStaff возвращает всех сотрудников кроме администраторов —
// справочник для назначения и эскалации.
func (r *UserRepository) ListStaff(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.SelectContext(ctx, &users, `
		SELECT * FROM users WHERE role != 'admin' ORDER BY full_name
	`)
	return users, err
}
