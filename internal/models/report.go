package models

import (
	"time"
)

// Report описывает анонимную жалобу. ReportID — публичный идентификатор,
// числовой ID наружу не отдаётся. Passcode хранится в открытом виде и
// выдаётся заявителю ровно один раз при создании.
type Report struct {
	ID           int64      `db:"id" json:"-"`
	ReportID     string     `db:"report_id" json:"report_id"`
	Passcode     string     `db:"passcode" json:"-"`
	Category     string     `db:"category" json:"category"`
	Subcategory  *string    `db:"subcategory" json:"subcategory,omitempty"`
	Title        string     `db:"title" json:"title"`
	Description  string     `db:"description" json:"description"`
	Location     *string    `db:"location" json:"location,omitempty"`
	DateIncident *string    `db:"date_incident" json:"date_incident,omitempty"`
	TimeIncident *string    `db:"time_incident" json:"time_incident,omitempty"`
	Severity     string     `db:"severity" json:"severity"`
	Status       string     `db:"status" json:"status"`
	AssignedTo   *int64     `db:"assigned_to" json:"assigned_to,omitempty"`
	AssignedBy   *int64     `db:"assigned_by" json:"assigned_by,omitempty"`
	AssignedAt   *time.Time `db:"assigned_at" json:"assigned_at,omitempty"`
	EscalatedTo  *int64     `db:"escalated_to" json:"escalated_to,omitempty"`
	EscalatedBy  *int64     `db:"escalated_by" json:"escalated_by,omitempty"`
	EscalatedAt  *time.Time `db:"escalated_at" json:"escalated_at,omitempty"`
	Response     *string    `db:"response" json:"response,omitempty"`
	ResponseBy   *int64     `db:"response_by" json:"response_by,omitempty"`
	ResponseAt   *time.Time `db:"response_at" json:"response_at,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`

	// Имена сотрудников из LEFT JOIN к users, в таблице reports их нет.
	AssignedToName  *string `db:"assigned_to_name" json:"assigned_to_name,omitempty"`
	EscalatedToName *string `db:"escalated_to_name" json:"escalated_to_name,omitempty"`
	ResponseByName  *string `db:"response_by_name" json:"response_by_name,omitempty"`
}

// ReportHistory — одна запись журнала изменений. Записи только добавляются,
// существующие никогда не меняются и не удаляются.
type ReportHistory struct {
	ID        int64     `db:"id" json:"-"`
	ReportID  int64     `db:"report_id" json:"-"`
	Action    string    `db:"action" json:"action"`
	OldValue  *string   `db:"old_value" json:"oldValue,omitempty"`
	NewValue  *string   `db:"new_value" json:"newValue,omitempty"`
	ChangedBy *int64    `db:"changed_by" json:"-"`
	ChangedAt time.Time `db:"changed_at" json:"changedAt"`

	// Имя автора изменения, заполняется только в представлении для сотрудников.
	ChangedByName *string `db:"changed_by_name" json:"changedBy,omitempty"`
}

// ReportAttachment — вложение к жалобе. Таблица создаётся схемой,
// но загрузка файлов пока не реализована ни одним маршрутом.
type ReportAttachment struct {
	ID         int64     `db:"id" json:"id"`
	ReportID   int64     `db:"report_id" json:"report_id"`
	Filename   string    `db:"filename" json:"filename"`
	FilePath   string    `db:"file_path" json:"file_path"`
	FileSize   *int64    `db:"file_size" json:"file_size,omitempty"`
	MimeType   *string   `db:"mime_type" json:"mime_type,omitempty"`
	UploadedAt time.Time `db:"uploaded_at" json:"uploaded_at"`
}

// TrackedReport — проекция жалобы для анонимного отслеживания:
// без числового id, без passcode, с именами вместо идентификаторов.
type TrackedReport struct {
	ReportID     string          `json:"reportId"`
	Title        string          `json:"title"`
	Category     string          `json:"category"`
	Subcategory  *string         `json:"subcategory,omitempty"`
	Status       string          `json:"status"`
	Severity     string          `json:"severity"`
	Description  string          `json:"description"`
	Location     *string         `json:"location,omitempty"`
	DateIncident *string         `json:"dateIncident,omitempty"`
	TimeIncident *string         `json:"timeIncident,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
	AssignedTo   *string         `json:"assignedTo,omitempty"`
	EscalatedTo  *string         `json:"escalatedTo,omitempty"`
	Response     *string         `json:"response,omitempty"`
	ResponseBy   *string         `json:"responseBy,omitempty"`
	ResponseAt   *time.Time      `json:"responseAt,omitempty"`
	History      []ReportHistory `json:"history"`
}
