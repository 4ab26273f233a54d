//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"trivia-api/internal/adapter"
	"trivia-api/internal/cache"
	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/logger"
	"trivia-api/internal/metrics"
	"trivia-api/internal/repository"
	"trivia-api/internal/server"
	"trivia-api/internal/service"
	"trivia-api/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
)

var (
	app         *fiber.App
	db          *sqlx.DB
	redisClient *redis.Client
	cfg         *config.Config
)

func runContainer(pool *dockertest.Pool, opts *dockertest.RunOptions) (*dockertest.Resource, error) {
	resource, err := pool.RunWithOptions(opts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, err
	}
	_ = resource.Expire(180)
	return resource, nil
}

func TestMain(m *testing.M) {
	os.Setenv("TRIVIA_ENV", "test")

	loadedCfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	cfg = loadedCfg

	if err := logger.Initialize(config.LoggerConfig{Level: "warn", Env: "test"}); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		panic(fmt.Sprintf("Could not construct docker pool: %v", err))
	}
	pool.MaxWait = 90 * time.Second

	pg, err := runContainer(pool, &dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env:        []string{"POSTGRES_USER=trivia", "POSTGRES_PASSWORD=trivia", "POSTGRES_DB=trivia_test"},
	})
	if err != nil {
		panic(fmt.Sprintf("Could not start postgres: %v", err))
	}
	rd, err := runContainer(pool, &dockertest.RunOptions{Repository: "redis", Tag: "7-alpine"})
	if err != nil {
		_ = pool.Purge(pg)
		panic(fmt.Sprintf("Could not start redis: %v", err))
	}
	purge := func() {
		_ = pool.Purge(pg)
		_ = pool.Purge(rd)
	}

	cfg.DB.Driver = config.DriverPostgres
	cfg.DB.Host = "localhost"
	cfg.DB.Port, _ = strconv.Atoi(pg.GetPort("5432/tcp"))
	cfg.DB.User = "trivia"
	cfg.DB.Password = "trivia"
	cfg.DB.DBName = "trivia_test"
	cfg.DB.SSLMode = "disable"
	cfg.Redis.Address = "localhost:" + rd.GetPort("6379/tcp")

	if err := pool.Retry(func() error {
		conn, _, err := database.NewSQLXDB(cfg.DB)
		if err != nil {
			return err
		}
		db = conn
		return nil
	}); err != nil {
		purge()
		panic(fmt.Sprintf("Could not connect to postgres: %v", err))
	}

	if err := pool.Retry(func() error {
		client, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return err
		}
		redisClient = client
		return nil
	}); err != nil {
		purge()
		panic(fmt.Sprintf("Could not connect to redis: %v", err))
	}

	migrator, err := database.NewMigrator(cfg.DB)
	if err == nil {
		err = migrator.Up()
		_ = migrator.Close()
	}
	if err != nil {
		purge()
		panic(fmt.Sprintf("Failed to run migrations: %v", err))
	}

	questionRepo := repository.NewQuestionDatabaseAdapter(db, database.Postgres)
	categoryRepo := repository.NewCategoryDatabaseAdapter(db, database.Postgres)
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	categoryService := service.NewCategoryService(categoryRepo, cacheAdapter, cfg.Cache.CategoryTTL)
	app = server.NewApp(server.Dependencies{
		Config:          cfg,
		QuestionService: service.NewQuestionService(questionRepo, categoryService, validation.NewValidator()),
		CategoryService: categoryService,
		QuizService:     service.NewQuizService(questionRepo, nil),
		DB:              db,
		Cache:           cacheAdapter,
		Metrics:         metrics.New(),
	})

	code := m.Run()

	_ = redisClient.Close()
	_ = db.Close()
	purge()
	os.Exit(code)
}

func doRequest(t *testing.T, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var decoded map[string]any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("decode %q: %v", raw, err)
		}
	}
	return resp, decoded
}

// resetQuestions clears questions and the category cache between tests.
func resetQuestions(t *testing.T) {
	t.Helper()
	if _, err := db.Exec("DELETE FROM questions"); err != nil {
		t.Fatalf("reset questions: %v", err)
	}
	if err := redisClient.FlushDB(t.Context()).Err(); err != nil {
		t.Fatalf("flush redis: %v", err)
	}
}
