package dto

// LoginRequest — тело POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SubmitReportRequest — тело POST /api/reports/submit.
// Имена полей повторяют форму подачи жалобы.
type SubmitReportRequest struct {
	Category     string  `json:"category" binding:"required"`
	Subcategory  *string `json:"subcategory"`
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	Location     *string `json:"location"`
	DateIncident *string `json:"date_incident"`
	TimeIncident *string `json:"time_incident"`
	Severity     string  `json:"severity"`
}

// TrackRequest — тело POST /api/tracking/status.
type TrackRequest struct {
	ReportID string `json:"reportId" binding:"required"`
	Passcode string `json:"passcode" binding:"required"`
}

// UpdateStatusRequest — тело PATCH /api/dashboard/reports/:reportId/status.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AssignRequest — тело PATCH /api/dashboard/reports/:reportId/assign.
type AssignRequest struct {
	AssignedTo int64 `json:"assignedTo" binding:"required"`
}

// EscalateRequest — тело PATCH /api/dashboard/reports/:reportId/escalate.
type EscalateRequest struct {
	EscalatedTo int64 `json:"escalatedTo" binding:"required"`
}

// RespondRequest — тело PATCH /api/dashboard/reports/:reportId/respond.
type RespondRequest struct {
	Response string `json:"response" binding:"required"`
}
