package router

import (
	"github.com/gin-gonic/gin"

	"github.com/campus-reports/campus-reports-backend/internal/config"
	"github.com/campus-reports/campus-reports-backend/internal/http/handlers"
	"github.com/campus-reports/campus-reports-backend/internal/http/middleware"
	"github.com/campus-reports/campus-reports-backend/internal/service"
)

// SetupRouter собирает таблицу маршрутов приложения.
func SetupRouter(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	reportHandler *handlers.ReportHandler,
	trackingHandler *handlers.TrackingHandler,
	dashboardHandler *handlers.DashboardHandler,
	healthHandler *handlers.HealthHandler,
	tokenManager *service.TokenManager,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", healthHandler.Health)

	api := r.Group("/api")

	// Анонимные маршруты под rate limit: вход, подача, отслеживание.
	anonLimit := middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", anonLimit, authHandler.Login)
	}

	protectedAuth := api.Group("/auth")
	protectedAuth.Use(middleware.AuthMiddleware(tokenManager))
	{
		protectedAuth.GET("/me", authHandler.Me)
		protectedAuth.GET("/users", authHandler.ListUsers)
	}

	reports := api.Group("/reports")
	{
		reports.POST("/submit", anonLimit, reportHandler.Submit)
		reports.GET("/categories", reportHandler.Categories)
		reports.GET("/stats", reportHandler.Stats)
	}

	tracking := api.Group("/tracking")
	{
		tracking.POST("/status", anonLimit, trackingHandler.Track)
		tracking.GET("/status-options", trackingHandler.StatusOptions)
	}

	// Панель сотрудников целиком за bearer токеном.
	dashboard := api.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware(tokenManager))
	{
		dashboard.GET("/reports", dashboardHandler.ListReports)
		dashboard.GET("/reports/:reportId", dashboardHandler.GetReport)
		dashboard.PATCH("/reports/:reportId/status", dashboardHandler.UpdateStatus)
		dashboard.PATCH("/reports/:reportId/assign", dashboardHandler.Assign)
		dashboard.PATCH("/reports/:reportId/escalate", dashboardHandler.Escalate)
		dashboard.PATCH("/reports/:reportId/respond", dashboardHandler.Respond)
	}

	return r
}
