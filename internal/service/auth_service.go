package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/campus-reports/campus-reports-backend/internal/models"
	"github.com/campus-reports/campus-reports-backend/internal/repository"
)

// ErrInvalidCredentials возвращается при любой ошибке входа: и для
// неизвестного пользователя, и для неверного пароля ответ одинаков,
// чтобы не давать перебирать имена учётных записей.
var ErrInvalidCredentials = errors.New("неверное имя пользователя или пароль")

// AuthRepository описывает зависимости AuthService от слоя хранилища.
type AuthRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	ListStaff(ctx context.Context) ([]models.User, error)
}

// AuthService инкапсулирует проверку учётных данных и выпуск токенов.
type AuthService struct {
	repo         AuthRepository
	tokenManager *TokenManager
}

// NewAuthService создаёт сервис аутентификации.
func NewAuthService(repo AuthRepository, tokenManager *TokenManager) *AuthService {
	return &AuthService{
		repo:         repo,
		tokenManager: tokenManager,
	}
}

// Login проверяет учётные данные и возвращает пользователя с access токеном.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokenManager.Generate(user)
	if err != nil {
		return nil, "", fmt.Errorf("auth service: не удалось выпустить токен: %w", err)
	}

	return user, token, nil
}

// CurrentUser возвращает пользователя по идентификатору из токена.
func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	return s.repo.GetByID(ctx, userID)
}

// ListStaff возвращает сотрудников для выбора при назначении и эскалации.
func (s *AuthService) ListStaff(ctx context.Context) ([]models.User, error) {
	return s.repo.ListStaff(ctx)
}
