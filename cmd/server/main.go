package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/campus-reports/campus-reports-backend/internal/config"
	"github.com/campus-reports/campus-reports-backend/internal/db"
	httpHandlers "github.com/campus-reports/campus-reports-backend/internal/http/handlers"
	httpRouter "github.com/campus-reports/campus-reports-backend/internal/http/router"
	"github.com/campus-reports/campus-reports-backend/internal/logger"
	"github.com/campus-reports/campus-reports-backend/internal/repository"
	"github.com/campus-reports/campus-reports-backend/internal/service"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	// Инициализация логгера
	logLevel := "info"
	if cfg.Env == "development" {
		logLevel = "debug"
		logger.Init(logLevel)
		logger.SetTextFormatter()
	} else {
		logger.Init(logLevel)
	}

	// Подключение к базе и миграции.
	dbConn, err := db.NewSQLite(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("main: ошибка открытия базы: %v", err)
	}
	defer safeClose(dbConn)

	if err := db.RunMigrations(ctx, dbConn, cfg.MigrationsPath); err != nil {
		log.Fatalf("main: ошибка миграций: %v", err)
	}

	// Вспомогательные сервисы.
	tokenManager := service.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	// Репозитории.
	userRepo := repository.NewUserRepository(dbConn)
	reportRepo := repository.NewReportRepository(dbConn)
	historyRepo := repository.NewReportHistoryRepository(dbConn)
	statsRepo := repository.NewStatsRepository(dbConn)

	// Сервисы.
	authService := service.NewAuthService(userRepo, tokenManager)
	intakeService := service.NewIntakeService(reportRepo)
	trackingService := service.NewTrackingService(reportRepo, historyRepo)
	triageService := service.NewTriageService(reportRepo, historyRepo)
	statsService := service.NewStatsService(statsRepo)
	seedService := service.NewSeedService(userRepo)

	// Служебная учётная запись администратора.
	if err := seedService.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("main: ошибка сидирования администратора: %v", err)
	}

	// HTTP хэндлеры.
	authHandler := httpHandlers.NewAuthHandler(authService)
	reportHandler := httpHandlers.NewReportHandler(intakeService, statsService)
	trackingHandler := httpHandlers.NewTrackingHandler(trackingService)
	dashboardHandler := httpHandlers.NewDashboardHandler(triageService)
	healthHandler := httpHandlers.NewHealthHandler(dbConn)

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, authHandler, reportHandler, trackingHandler, dashboardHandler, healthHandler, tokenManager)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: engine,
	}

	// Завершаем сервер при получении сигнала.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: ошибка остановки http сервера: %v", err)
		}
	}()

	log.Printf("main: HTTP сервер запущен на порту %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
}

// safeClose закрывает соединение с базой.
func safeClose(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		log.Printf("main: ошибка закрытия базы: %v", err)
	}
}
