package models

// Статусы жизненного цикла жалобы. Порядок переходов намеренно не
// ограничивается: любой статус можно выставить из любого.
const (
	StatusPending     = "pending"
	StatusUnderReview = "under_review"
	StatusAssigned    = "assigned"
	StatusInProgress  = "in_progress"
	StatusEscalated   = "escalated"
	StatusResolved    = "resolved"
	StatusClosed      = "closed"
)

// Уровни серьёзности.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

var validStatuses = map[string]bool{
	StatusPending:     true,
	StatusUnderReview: true,
	StatusAssigned:    true,
	StatusInProgress:  true,
	StatusEscalated:   true,
	StatusResolved:    true,
	StatusClosed:      true,
}

var validSeverities = map[string]bool{
	SeverityLow:      true,
	SeverityMedium:   true,
	SeverityHigh:     true,
	SeverityCritical: true,
}

// IsValidStatus проверяет принадлежность статуса к семи допустимым значениям.
func IsValidStatus(status string) bool {
	return validStatuses[status]
}

// IsValidSeverity проверяет уровень серьёзности.
func IsValidSeverity(severity string) bool {
	return validSeverities[severity]
}

// StatusOption — метаданные статуса для отображения на клиенте.
type StatusOption struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// StatusOptions возвращает справочник статусов в порядке жизненного цикла.
func StatusOptions() []StatusOption {
	return []StatusOption{
		{Value: StatusPending, Label: "Ожидает рассмотрения", Description: "Жалоба отправлена и ожидает рассмотрения", Color: "#f59e0b"},
		{Value: StatusUnderReview, Label: "На рассмотрении", Description: "Жалоба рассматривается ответственными сотрудниками", Color: "#3b82f6"},
		{Value: StatusAssigned, Label: "Назначена", Description: "Жалоба назначена сотруднику", Color: "#8b5cf6"},
		{Value: StatusInProgress, Label: "В работе", Description: "По жалобе ведётся работа", Color: "#10b981"},
		{Value: StatusEscalated, Label: "Эскалирована", Description: "Жалоба передана руководству", Color: "#ef4444"},
		{Value: StatusResolved, Label: "Решена", Description: "Жалоба решена", Color: "#059669"},
		{Value: StatusClosed, Label: "Закрыта", Description: "Жалоба закрыта", Color: "#6b7280"},
	}
}

// Category — раздел справочника категорий жалоб.
type Category struct {
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories"`
}

// Categories возвращает статический справочник категорий с подкатегориями.
func Categories() map[string]Category {
	return map[string]Category{
		"academic": {
			Name: "Учебный процесс",
			Subcategories: []string{
				"Спор об оценке",
				"Плагиат",
				"Нарушение академической этики",
				"Запись на курсы",
				"Поведение преподавателя",
				"Другое (учебный процесс)",
			},
		},
		"facilities": {
			Name: "Инфраструктура и помещения",
			Subcategories: []string{
				"Состояние зданий",
				"Неисправное оборудование",
				"Угроза безопасности",
				"Доступная среда",
				"Уборка",
				"Другое (инфраструктура)",
			},
		},
		"security": {
			Name: "Безопасность",
			Subcategories: []string{
				"Кража",
				"Вандализм",
				"Домогательства",
				"Насилие",
				"Подозрительная активность",
				"Другое (безопасность)",
			},
		},
		"student_life": {
			Name: "Студенческая жизнь",
			Subcategories: []string{
				"Общежития",
				"Питание",
				"Транспорт",
				"Студенческие организации",
				"Мероприятия",
				"Другое (студенческая жизнь)",
			},
		},
		"technology": {
			Name: "Технические проблемы",
			Subcategories: []string{
				"Проблемы с WiFi",
				"Компьютерные классы",
				"Программное обеспечение",
				"Онлайн-сервисы",
				"Техподдержка",
				"Другое (технические проблемы)",
			},
		},
		"other": {
			Name: "Прочее",
			Subcategories: []string{
				"Общая жалоба",
				"Предложение",
				"Обратная связь",
				"Другое",
			},
		},
	}
}

// IsValidCategory проверяет, что категория присутствует в справочнике.
func IsValidCategory(category string) bool {
	_, ok := Categories()[category]
	return ok
}
