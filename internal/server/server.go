package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "github.com/SYH32/trivia-api/docs"
	"github.com/SYH32/trivia-api/internal/handlers"
	"github.com/SYH32/trivia-api/internal/middleware"
	"github.com/SYH32/trivia-api/internal/services"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Server struct {
	router   *gin.Engine
	logger   *zap.Logger
	registry *prometheus.Registry
}

func New(triviaService *services.TriviaService, logger *zap.Logger) *Server {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	s := &Server{
		logger:   logger,
		registry: registry,
	}
	s.router = s.newRouter(triviaService)
	return s
}

// Router returns the gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) newRouter(triviaService *services.TriviaService) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(middleware.RequestID())
	r.Use(ginzap.Ginzap(s.logger, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(s.logger, true))
	r.Use(middleware.NewMetrics(s.registry).Handler())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))

	r.NoRoute(handlers.NotFound)
	r.NoMethod(handlers.MethodNotAllowed)

	categoryHandler := handlers.NewCategoryHandler(triviaService)
	questionHandler := handlers.NewQuestionHandler(triviaService)
	quizHandler := handlers.NewQuizHandler(triviaService)
	healthHandler := handlers.NewHealthHandler(triviaService)

	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	categories := r.Group("/categories")
	{
		categories.GET("", categoryHandler.ListCategories)
		categories.GET("/:id/questions", categoryHandler.QuestionsByCategory)
	}

	questions := r.Group("/questions")
	{
		questions.GET("", questionHandler.ListQuestions)
		questions.POST("", questionHandler.CreateQuestion)
		questions.POST("/search", questionHandler.SearchQuestions)
		questions.DELETE("/:id", questionHandler.DeleteQuestion)
	}

	r.POST("/quizzes", quizHandler.NextQuestion)

	return r
}

// Run serves on addr until ctx is cancelled, then drains in-flight
// requests for at most shutdownTimeout.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("server shutting down", zap.Duration("timeout", shutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
