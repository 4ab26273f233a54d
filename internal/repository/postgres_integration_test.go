//go:build integration

package repository

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"testing"
	"time"

	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/domain"

	"github.com/jmoiron/sqlx"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var integrationDB *sqlx.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not construct docker pool: %v\n", err)
		os.Exit(1)
	}
	if err := pool.Client.Ping(); err != nil {
		fmt.Fprintf(os.Stderr, "could not connect to docker: %v\n", err)
		os.Exit(1)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=trivia",
			"POSTGRES_PASSWORD=trivia",
			"POSTGRES_DB=trivia_test",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not start postgres: %v\n", err)
		os.Exit(1)
	}
	_ = resource.Expire(120)

	port, _ := strconv.Atoi(resource.GetPort("5432/tcp"))
	cfg := config.DBConfig{
		Driver:   config.DriverPostgres,
		Host:     "localhost",
		Port:     port,
		User:     "trivia",
		Password: "trivia",
		DBName:   "trivia_test",
		SSLMode:  "disable",
	}

	pool.MaxWait = 60 * time.Second
	if err := pool.Retry(func() error {
		db, _, err := database.NewSQLXDB(cfg)
		if err != nil {
			return err
		}
		integrationDB = db
		return nil
	}); err != nil {
		fmt.Fprintf(os.Stderr, "could not connect to postgres: %v\n", err)
		_ = pool.Purge(resource)
		os.Exit(1)
	}

	migrator, err := database.NewMigrator(cfg)
	if err == nil {
		err = migrator.Up()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not migrate: %v\n", err)
		_ = pool.Purge(resource)
		os.Exit(1)
	}

	code := m.Run()

	_ = integrationDB.Close()
	_ = pool.Purge(resource)
	os.Exit(code)
}

func TestPostgres_SeededCategories(t *testing.T) {
	repo := NewCategoryDatabaseAdapter(integrationDB, database.Postgres)

	categories, err := repo.GetAllCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 6)
	assert.Equal(t, "Science", categories[0].Type)
	assert.Equal(t, "Sports", categories[5].Type)
}

func TestPostgres_QuestionLifecycle(t *testing.T) {
	repo := NewQuestionDatabaseAdapter(integrationDB, database.Postgres)
	ctx := context.Background()

	q := domain.NewQuestion("What is the heaviest organ in the human body?", "The Liver", 1, 4)
	require.NoError(t, repo.SaveQuestion(ctx, q))
	require.NotZero(t, q.ID)

	got, err := repo.GetQuestionByID(ctx, q.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "The Liver", got.Answer)

	byCategory, err := repo.ListQuestionsByCategory(ctx, 1)
	require.NoError(t, err)
	assert.NotEmpty(t, byCategory)

	deleted, err := repo.DeleteQuestion(ctx, q.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteQuestion(ctx, q.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	got, err = repo.GetQuestionByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
