package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/campus-reports/campus-reports-backend/internal/dto"
	"github.com/campus-reports/campus-reports-backend/internal/service"
)

func reportRouter(repo *stubIntakeRepository) *gin.Engine {
	handler := NewReportHandler(service.NewIntakeService(repo), nil)

	router := gin.New()
	router.POST("/api/reports/submit", handler.Submit)
	router.GET("/api/reports/categories", handler.Categories)
	return router
}

func TestReportHandler_Submit(t *testing.T) {
	repo := &stubIntakeRepository{}
	router := reportRouter(repo)

	w := performJSON(t, router, "POST", "/api/reports/submit", dto.SubmitReportRequest{
		Category:    "facilities",
		Title:       "Протечка в общежитии",
		Description: "В комнате 214 третий день течёт потолок после дождя.",
	})

	checkStatus(t, w, http.StatusOK)
	payload := decodeBody(t, w)
	checkEnvelope(t, payload, true)

	assert.Regexp(t, `^RPT-\d+-[A-Z0-9]{5}$`, payload["reportId"])
	assert.Regexp(t, `^[A-Z0-9]{8}$`, payload["passcode"])
	assert.NotEmpty(t, payload["instructions"])
	assert.NotNil(t, repo.created, "жалоба должна дойти до хранилища")
}

func TestReportHandler_Submit_MissingFields(t *testing.T) {
	router := reportRouter(&stubIntakeRepository{})

	w := performJSON(t, router, "POST", "/api/reports/submit", map[string]string{"category": "facilities"})

	checkStatus(t, w, http.StatusBadRequest)
	checkEnvelope(t, decodeBody(t, w), false)
}

func TestReportHandler_Submit_ValidationError(t *testing.T) {
	router := reportRouter(&stubIntakeRepository{})

	w := performJSON(t, router, "POST", "/api/reports/submit", dto.SubmitReportRequest{
		Category:    "parking",
		Title:       "Протечка в общежитии",
		Description: "В комнате 214 третий день течёт потолок после дождя.",
	})

	checkStatus(t, w, http.StatusBadRequest)
	payload := decodeBody(t, w)
	checkEnvelope(t, payload, false)
	assert.Contains(t, payload["message"], "категория")
}

func TestReportHandler_Categories(t *testing.T) {
	router := reportRouter(&stubIntakeRepository{})

	w := performJSON(t, router, "GET", "/api/reports/categories", nil)

	checkStatus(t, w, http.StatusOK)
	payload := decodeBody(t, w)
	checkEnvelope(t, payload, true)

	categories, ok := payload["categories"].(map[string]interface{})
	assert.True(t, ok, "ответ должен содержать справочник категорий")
	assert.Len(t, categories, 6)
	assert.Contains(t, categories, "facilities")
}
