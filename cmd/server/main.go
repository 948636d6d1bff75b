package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"parts-market.backend/internal/config"
	"parts-market.backend/internal/infrastructure/repositories"
	"parts-market.backend/internal/interfaces/http/handlers"
	"parts-market.backend/internal/interfaces/http/middleware"
	"parts-market.backend/internal/usecases"
	"parts-market.backend/pkg/logger"
	"parts-market.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		logger.Warn(context.Background(), "Database not available, endpoints will return errors", zap.Error(err))
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	partRepo := repositories.NewAutoPartRepository(db)
	imageRepo := repositories.NewPartImageRepository(db)
	inquiryRepo := repositories.NewInquiryRepository(db)
	optionRepo := repositories.NewFinancingOptionRepository(db)
	appRepo := repositories.NewFinancingApplicationRepository(db)

	// Usecases
	userUsecase := usecases.NewUserUsecase(userRepo)
	partUsecase := usecases.NewPartUsecase(partRepo, imageRepo, userRepo)
	inquiryUsecase := usecases.NewInquiryUsecase(inquiryRepo, partRepo)
	financingUsecase := usecases.NewFinancingUsecase(optionRepo, appRepo, partRepo, userRepo)

	// Simulated current-user selector
	currentUserStore := redis.NewCurrentUserStore(cfg.Session.CurrentUserTTL)

	// Handlers
	userHandler := handlers.NewUserHandler(userUsecase)
	partHandler := handlers.NewPartHandler(partUsecase)
	inquiryHandler := handlers.NewInquiryHandler(inquiryUsecase)
	financingHandler := handlers.NewFinancingHandler(financingUsecase)
	sessionHandler := handlers.NewSessionHandler(userUsecase, currentUserStore)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.ActorMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		userHandler:      userHandler,
		partHandler:      partHandler,
		inquiryHandler:   inquiryHandler,
		financingHandler: financingHandler,
		sessionHandler:   sessionHandler,
	})

	logger.Info(context.Background(), "Parts Market backend starting", zap.String("port", cfg.Server.Port))

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
