package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/campus-reports/campus-reports-backend/internal/models"
	"github.com/campus-reports/campus-reports-backend/internal/repository"
)

// mockAuthRepository реализует AuthRepository для тестов.
type mockAuthRepository struct {
	usersByName map[string]*models.User
	usersByID   map[int64]*models.User
}

func newMockAuthRepository() *mockAuthRepository {
	return &mockAuthRepository{
		usersByName: make(map[string]*models.User),
		usersByID:   make(map[int64]*models.User),
	}
}

func (m *mockAuthRepository) add(user *models.User) {
	m.usersByName[user.Username] = user
	m.usersByID[user.ID] = user
}

func (m *mockAuthRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if user, ok := m.usersByName[username]; ok {
		return user, nil
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockAuthRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if user, ok := m.usersByID[id]; ok {
		return user, nil
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockAuthRepository) ListStaff(ctx context.Context) ([]models.User, error) {
	var users []models.User
	for _, u := range m.usersByID {
		if u.Role != models.RoleAdmin {
			users = append(users, *u)
		}
	}
	return users, nil
}

func staffUser(id int64, username, password, role string) *models.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &models.User{
		ID:           id,
		Username:     username,
		PasswordHash: string(hash),
		FullName:     "Test User",
		Role:         role,
		Email:        username + "@campus.edu",
	}
}

func TestAuthService_Login(t *testing.T) {
	repo := newMockAuthRepository()
	repo.add(staffUser(1, "inspector", "secret123", models.RoleAuthority))

	svc := NewAuthService(repo, NewTokenManager("test-secret", time.Hour))

	user, token, err := svc.Login(context.Background(), "inspector", "secret123")
	if err != nil {
		t.Fatalf("login returned error: %v", err)
	}
	if user.Username != "inspector" {
		t.Fatalf("ожидался пользователь inspector, получили %q", user.Username)
	}
	if token == "" {
		t.Fatalf("токен должен быть выпущен")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newMockAuthRepository()
	repo.add(staffUser(1, "inspector", "secret123", models.RoleAuthority))

	svc := NewAuthService(repo, NewTokenManager("test-secret", time.Hour))

	_, _, err := svc.Login(context.Background(), "inspector", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("ожидалась ErrInvalidCredentials, получили %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	repo := newMockAuthRepository()
	svc := NewAuthService(repo, NewTokenManager("test-secret", time.Hour))

	_, _, err := svc.Login(context.Background(), "ghost", "secret123")

	// Для несуществующего пользователя ошибка та же, что и для неверного
	// пароля: ответ не должен позволять перебирать имена учётных записей.
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("ожидалась ErrInvalidCredentials, получили %v", err)
	}
}

func TestAuthService_ListStaff_ExcludesAdmins(t *testing.T) {
	repo := newMockAuthRepository()
	repo.add(staffUser(1, "admin", "admin123", models.RoleAdmin))
	repo.add(staffUser(2, "inspector", "secret123", models.RoleAuthority))

	svc := NewAuthService(repo, NewTokenManager("test-secret", time.Hour))

	staff, err := svc.ListStaff(context.Background())
	if err != nil {
		t.Fatalf("list staff returned error: %v", err)
	}
	if len(staff) != 1 || staff[0].Username != "inspector" {
		t.Fatalf("ожидался один сотрудник inspector, получили %+v", staff)
	}
}
