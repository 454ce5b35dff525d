package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/SYH32/trivia-api/internal/config"
	"github.com/SYH32/trivia-api/internal/database"
	"github.com/SYH32/trivia-api/internal/logger"
	"github.com/SYH32/trivia-api/internal/repository"
	"github.com/SYH32/trivia-api/internal/server"
	"github.com/SYH32/trivia-api/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title           Trivia API
// @version         1.0
// @description     Trivia questions, categories and a quiz endpoint
// @host            localhost:5000
// @BasePath        /

func main() {
	cfg := config.Load()

	zapLogger, err := logger.New(cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.AutoMigrate(db); err != nil {
		zapLogger.Fatal("failed to migrate database", zap.Error(err))
	}
	if cfg.SeedData {
		if err := database.Seed(db, zapLogger); err != nil {
			zapLogger.Fatal("failed to seed database", zap.Error(err))
		}
	}

	triviaService := services.NewTriviaService(repository.NewTriviaRepository(db), zapLogger)
	srv := server.New(triviaService, zapLogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx, ":"+cfg.ServerPort, cfg.ShutdownTimeout); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
	zapLogger.Info("server stopped")
}
