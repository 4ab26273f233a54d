// @title Trivia API
// @version 1.0
// @description REST API backing the trivia game web client.
// @license.name MIT
// @host localhost:5000
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"trivia-api/internal/adapter"
	"trivia-api/internal/cache"
	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/domain"
	"trivia-api/internal/logger"
	"trivia-api/internal/metrics"
	"trivia-api/internal/repository"
	"trivia-api/internal/server"
	"trivia-api/internal/service"
	"trivia-api/internal/validation"

	_ "trivia-api/cmd/api/docs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if os.Getenv("TRIVIA_ENV") != "production" {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.Printf("Warning: could not load .env file: %v", err)
		}
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	db, dialect, err := database.NewSQLXDB(cfg.DB)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Category cache enabled", zap.String("redis", cfg.Redis.Address), zap.Duration("ttl", cfg.Cache.CategoryTTL))
	} else {
		appLogger.Info("Redis address not set, category cache disabled")
	}

	questionRepository := repository.NewQuestionDatabaseAdapter(db, dialect)
	categoryRepository := repository.NewCategoryDatabaseAdapter(db, dialect)

	categoryService := service.NewCategoryService(categoryRepository, cacheAdapter, cfg.Cache.CategoryTTL)
	questionService := service.NewQuestionService(questionRepository, categoryService, validation.NewValidator())
	quizService := service.NewQuizService(questionRepository, nil)

	app := server.NewApp(server.Dependencies{
		Config:          cfg,
		QuestionService: questionService,
		CategoryService: categoryService,
		QuizService:     quizService,
		DB:              db,
		Cache:           cacheAdapter,
		Metrics:         metrics.New(),
	})

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Env), zap.String("db", dialect.Name))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownGrace)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
		return
	}
	appLogger.Info("Server exited gracefully")
}
