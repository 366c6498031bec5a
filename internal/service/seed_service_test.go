package service

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/campus-reports/campus-reports-backend/internal/models"
	"github.com/campus-reports/campus-reports-backend/internal/repository"
)

type mockSeedRepository struct {
	existing *models.User
	created  *models.User
	calls    int
}

func (m *mockSeedRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.existing != nil && m.existing.Username == username {
		return m.existing, nil
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockSeedRepository) Create(ctx context.Context, user *models.User) error {
	m.created = user
	m.calls++
	return nil
}

func TestSeedService_EnsureAdmin_CreatesAccount(t *testing.T) {
	repo := &mockSeedRepository{}
	svc := NewSeedService(repo)

	if err := svc.EnsureAdmin(context.Background(), "admin", "admin123"); err != nil {
		t.Fatalf("ensure admin returned error: %v", err)
	}

	if repo.created == nil {
		t.Fatalf("администратор не был создан")
	}
	if repo.created.Role != models.RoleAdmin {
		t.Fatalf("ожидалась роль %q, получили %q", models.RoleAdmin, repo.created.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(repo.created.PasswordHash), []byte("admin123")); err != nil {
		t.Fatalf("пароль должен храниться как bcrypt-хеш: %v", err)
	}
}

func TestSeedService_EnsureAdmin_Idempotent(t *testing.T) {
	repo := &mockSeedRepository{
		existing: &models.User{ID: 1, Username: "admin", Role: models.RoleAdmin},
	}
	svc := NewSeedService(repo)

	if err := svc.EnsureAdmin(context.Background(), "admin", "admin123"); err != nil {
		t.Fatalf("ensure admin returned error: %v", err)
	}
	if repo.calls != 0 {
		t.Fatalf("повторное сидирование не должно создавать пользователя")
	}
}
