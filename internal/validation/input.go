package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/campus-reports/campus-reports-backend/internal/models"
)

// Константы валидации
const (
	MinTitleLength       = 5
	MaxTitleLength       = 200
	MinDescriptionLength = 10
	MaxDescriptionLength = 5000
	MaxLocationLength    = 200
	MaxResponseLength    = 5000
)

// Error помечает ошибки проверки входных данных, чтобы HTTP слой
// отличал их от внутренних ошибок и отвечал кодом 400.
type Error struct {
	msg string
}

func (e *Error) Error() string {
	return e.msg
}

func newError(format string, args ...interface{}) error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// IsError сообщает, является ли ошибка ошибкой валидации.
func IsError(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}

// ValidateLength проверяет длину строки.
func ValidateLength(fieldName, value string, min, max int) error {
	length := utf8.RuneCountInString(value)
	if min > 0 && length < min {
		return newError("%s должен быть не менее %d символов", fieldName, min)
	}
	if max > 0 && length > max {
		return newError("%s должен быть не более %d символов", fieldName, max)
	}
	return nil
}

// ValidateCategory проверяет, что категория входит в справочник.
func ValidateCategory(category string) error {
	if category == "" {
		return newError("категория обязательна")
	}
	if !models.IsValidCategory(category) {
		return newError("неизвестная категория %q", category)
	}
	return nil
}

// ValidateTitle проверяет заголовок жалобы.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return newError("заголовок обязателен")
	}
	return ValidateLength("заголовок", strings.TrimSpace(title), MinTitleLength, MaxTitleLength)
}

// ValidateDescription проверяет описание жалобы.
func ValidateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return newError("описание обязательно")
	}
	return ValidateLength("описание", strings.TrimSpace(description), MinDescriptionLength, MaxDescriptionLength)
}

// ValidateSeverity проверяет уровень серьёзности, пустое значение допустимо.
func ValidateSeverity(severity string) error {
	if severity == "" {
		return nil
	}
	if !models.IsValidSeverity(severity) {
		return newError("недопустимый уровень серьёзности %q", severity)
	}
	return nil
}

// ValidateStatus проверяет статус по списку из семи значений.
func ValidateStatus(status string) error {
	if status == "" {
		return newError("статус обязателен")
	}
	if !models.IsValidStatus(status) {
		return newError("недопустимый статус %q", status)
	}
	return nil
}

// ValidateLocation проверяет место происшествия.
func ValidateLocation(location *string) error {
	if location != nil && *location != "" {
		return ValidateLength("место происшествия", strings.TrimSpace(*location), 0, MaxLocationLength)
	}
	return nil
}

// ValidateResponse проверяет текст официального ответа.
func ValidateResponse(response string) error {
	if strings.TrimSpace(response) == "" {
		return newError("текст ответа обязателен")
	}
	return ValidateLength("текст ответа", strings.TrimSpace(response), 0, MaxResponseLength)
}
