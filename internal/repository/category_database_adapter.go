package repository

import (
	"context"
	"fmt"

	"trivia-api/internal/database"
	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type CategoryDatabaseAdapter struct {
	db      *sqlx.DB
	builder sq.StatementBuilderType
}

// NewCategoryDatabaseAdapter creates a new instance of CategoryDatabaseAdapter
func NewCategoryDatabaseAdapter(db *sqlx.DB, dialect database.Dialect) domain.CategoryRepository {
	return &CategoryDatabaseAdapter{db: db, builder: dialect.Builder()}
}

// GetAllCategories returns all categories ordered by ID
func (r *CategoryDatabaseAdapter) GetAllCategories(ctx context.Context) ([]*domain.Category, error) {
	query, args, err := r.builder.Select(`id "id"`, `type "type"`).
		From("categories").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build category query: %w", err)
	}

	var rows []models.Category
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*domain.Category, len(rows))
	for i := range rows {
		categories[i] = &domain.Category{ID: rows[i].ID, Type: rows[i].Type}
	}
	return categories, nil
}
