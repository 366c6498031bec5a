package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/campus-reports/campus-reports-backend/internal/logger"
	"github.com/campus-reports/campus-reports-backend/internal/models"
	"github.com/campus-reports/campus-reports-backend/internal/repository"
)

// SeedRepository описывает зависимости SeedService от слоя хранилища.
type SeedRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// SeedService создаёт служебную учётную запись администратора при старте.
type SeedService struct {
	repo SeedRepository
}

// NewSeedService создаёт сервис сидирования.
func NewSeedService(repo SeedRepository) *SeedService {
	return &SeedService{repo: repo}
}

// EnsureAdmin идемпотентно создаёт администратора: если учётная запись
// уже существует, ничего не делает.
func (s *SeedService) EnsureAdmin(ctx context.Context, username, password string) error {
	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return nil
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed service: не удалось захешировать пароль: %w", err)
	}

	department := "IT"
	admin := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		FullName:     "Системный администратор",
		Role:         models.RoleAdmin,
		Department:   &department,
		Email:        "admin@campus.edu",
	}

	if err := s.repo.Create(ctx, admin); err != nil {
		return fmt.Errorf("seed service: не удалось создать администратора: %w", err)
	}

	if logger.Log != nil {
		logger.Log.WithField("username", username).Info("seed: создана учётная запись администратора")
	}

	return nil
}
