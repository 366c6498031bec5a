package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/campus-reports/campus-reports-backend/internal/models"
	"github.com/campus-reports/campus-reports-backend/internal/validation"
)

const (
	codeAlphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	reportIDPrefix = "RPT"
	suffixLength   = 5
	passcodeLength = 8
)

// IntakeRepository описывает зависимости IntakeService от слоя хранилища.
type IntakeRepository interface {
	Create(ctx context.Context, report *models.Report) error
}

// IntakeService принимает анонимные жалобы.
type IntakeService struct {
	repo IntakeRepository
}

// SubmitInput содержит поля формы подачи жалобы.
type SubmitInput struct {
	Category     string
	Subcategory  *string
	Title        string
	Description  string
	Location     *string
	DateIncident *string
	TimeIncident *string
	Severity     string
}

// SubmitResult — идентификатор и код доступа новой жалобы.
// Passcode отдаётся заявителю здесь и больше нигде.
type SubmitResult struct {
	ReportID string
	Passcode string
}

// NewIntakeService создаёт сервис приёма жалоб.
func NewIntakeService(repo IntakeRepository) *IntakeService {
	return &IntakeService{repo: repo}
}

// Submit валидирует поля, сохраняет жалобу со статусом pending и
// возвращает пару идентификатор + код доступа.
func (s *IntakeService) Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	if err := validation.ValidateCategory(in.Category); err != nil {
		return nil, err
	}
	if err := validation.ValidateTitle(in.Title); err != nil {
		return nil, err
	}
	if err := validation.ValidateDescription(in.Description); err != nil {
		return nil, err
	}
	if err := validation.ValidateSeverity(in.Severity); err != nil {
		return nil, err
	}
	if err := validation.ValidateLocation(in.Location); err != nil {
		return nil, err
	}

	severity := in.Severity
	if severity == "" {
		severity = models.SeverityMedium
	}

	report := &models.Report{
		ReportID:     NewReportID(),
		Passcode:     NewPasscode(),
		Category:     in.Category,
		Subcategory:  in.Subcategory,
		Title:        strings.TrimSpace(in.Title),
		Description:  strings.TrimSpace(in.Description),
		Location:     in.Location,
		DateIncident: in.DateIncident,
		TimeIncident: in.TimeIncident,
		Severity:     severity,
	}

	// Уникальность report_id гарантирует только UNIQUE-ограничение в базе,
	// повторных попыток при коллизии нет: вероятность ненулевая, но
	// принята как известное ограничение.
	if err := s.repo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("intake service: не удалось сохранить жалобу: %w", err)
	}

	return &SubmitResult{
		ReportID: report.ReportID,
		Passcode: report.Passcode,
	}, nil
}

// NewReportID генерирует публичный идентификатор вида RPT-<unix-ms>-<5 символов>.
func NewReportID() string {
	return fmt.Sprintf("%s-%d-%s", reportIDPrefix, time.Now().UnixMilli(), randomCode(suffixLength))
}

// NewPasscode генерирует 8-символьный код доступа.
func NewPasscode() string {
	return randomCode(passcodeLength)
}

func randomCode(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(codeAlphabet[rand.Intn(len(codeAlphabet))])
	}
	return b.String()
}
