package dto

import (
	"github.com/campus-reports/campus-reports-backend/internal/models"
)

// Все ответы API завёрнуты в конверт {success, message?, ...}.

// ErrorResponse — конверт любой ошибки.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MessageResponse — успешный ответ без полезной нагрузки.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// LoginResponse — ответ на вход сотрудника.
type LoginResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *models.User `json:"user"`
}

// UserResponse — текущий пользователь.
type UserResponse struct {
	Success bool         `json:"success"`
	User    *models.User `json:"user"`
}

// UsersResponse — список сотрудников для назначения.
type UsersResponse struct {
	Success bool          `json:"success"`
	Users   []models.User `json:"users"`
}

// SubmitReportResponse — единственное место, где заявитель видит passcode.
type SubmitReportResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	ReportID     string `json:"reportId"`
	Passcode     string `json:"passcode"`
	Instructions string `json:"instructions"`
}

// CategoriesResponse — статический справочник категорий.
type CategoriesResponse struct {
	Success    bool                       `json:"success"`
	Categories map[string]models.Category `json:"categories"`
}

// StatsResponse — сводка для панели.
type StatsResponse struct {
	Success bool                `json:"success"`
	Stats   *models.ReportStats `json:"stats"`
}

// TrackResponse — анонимное представление жалобы.
type TrackResponse struct {
	Success bool                  `json:"success"`
	Report  *models.TrackedReport `json:"report"`
}

// StatusOptionsResponse — справочник статусов.
type StatusOptionsResponse struct {
	Success       bool                  `json:"success"`
	StatusOptions []models.StatusOption `json:"statusOptions"`
}

// Pagination — блок постраничной навигации.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// ReportListResponse — страница списка жалоб в панели.
type ReportListResponse struct {
	Success    bool            `json:"success"`
	Reports    []models.Report `json:"reports"`
	Pagination Pagination      `json:"pagination"`
}

// ReportDetail — жалоба с журналом для панели сотрудников.
type ReportDetail struct {
	*models.Report
	History []models.ReportHistory `json:"history"`
}

// ReportDetailResponse — детальная карточка жалобы.
type ReportDetailResponse struct {
	Success bool         `json:"success"`
	Report  ReportDetail `json:"report"`
}
