package models

// StatusCount — количество жалоб в одном статусе.
type StatusCount struct {
	Status string `db:"status" json:"status"`
	Count  int    `db:"count" json:"count"`
}

// CategoryCount — количество жалоб в одной категории.
type CategoryCount struct {
	Category string `db:"category" json:"category"`
	Count    int    `db:"count" json:"count"`
}

// ReportStats — сводка для панели сотрудников.
type ReportStats struct {
	Total      int             `json:"total"`
	ByStatus   []StatusCount   `json:"byStatus"`
	ByCategory []CategoryCount `json:"byCategory"`
	Recent     int             `json:"recent"`
}
