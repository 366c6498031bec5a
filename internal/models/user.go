package models

import (
	"time"
)

// User описывает сотрудника, имеющего доступ к панели управления.
// Анонимные заявители в системе не хранятся.
type User struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password" json:"-"`
	FullName     string    `db:"full_name" json:"fullName"`
	Role         string    `db:"role" json:"role"`
	Department   *string   `db:"department" json:"department,omitempty"`
	Email        string    `db:"email" json:"email"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

const (
	RoleAdmin     = "admin"
	RoleAuthority = "authority"
)
