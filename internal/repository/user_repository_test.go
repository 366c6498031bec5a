package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/campus-reports/campus-reports-backend/internal/models"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	conn := openTestDB(t)
	repo := NewUserRepository(conn)

	user := seedStaff(t, conn, "inspector", "Иван Петров")
	if user.ID == 0 {
		t.Fatalf("числовой id не проставлен")
	}

	byName, err := repo.GetByUsername(context.Background(), "inspector")
	if err != nil {
		t.Fatalf("get by username returned error: %v", err)
	}
	if byName.ID != user.ID {
		t.Fatalf("найден не тот пользователь: %d != %d", byName.ID, user.ID)
	}

	byID, err := repo.GetByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("get by id returned error: %v", err)
	}
	if byID.Username != "inspector" {
		t.Fatalf("ожидался username inspector, получили %q", byID.Username)
	}

	if _, err := repo.GetByUsername(context.Background(), "ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("ожидалась ErrUserNotFound, получили %v", err)
	}
}

func TestUserRepository_ListStaff(t *testing.T) {
	conn := openTestDB(t)
	repo := NewUserRepository(conn)

	admin := &models.User{
		Username:     "admin",
		PasswordHash: "hash",
		FullName:     "Системный администратор",
		Role:         models.RoleAdmin,
		Email:        "admin@campus.edu",
	}
	if err := repo.Create(context.Background(), admin); err != nil {
		t.Fatalf("не удалось создать администратора: %v", err)
	}
	seedStaff(t, conn, "petrov", "Иван Петров")
	seedStaff(t, conn, "smirnova", "Анна Смирнова")

	staff, err := repo.ListStaff(context.Background())
	if err != nil {
		t.Fatalf("list staff returned error: %v", err)
	}

	if len(staff) != 2 {
		t.Fatalf("администратор не должен попадать в список, получили %d записей", len(staff))
	}
	// Список отсортирован по полному имени.
	if staff[0].FullName != "Анна Смирнова" || staff[1].FullName != "Иван Петров" {
		t.Fatalf("неверный порядок сотрудников: %q, %q", staff[0].FullName, staff[1].FullName)
	}
}
