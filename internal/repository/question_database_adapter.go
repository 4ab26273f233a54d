package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trivia-api/internal/database"
	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

const questionsTable = "questions"

// Quoted aliases keep column names lowercase; Oracle reports them uppercase otherwise.
var questionColumns = []string{
	`id "id"`,
	`question "question"`,
	`answer "answer"`,
	`category "category"`,
	`difficulty "difficulty"`,
}

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx.DB
type QuestionDatabaseAdapter struct {
	db      *sqlx.DB
	dialect database.Dialect
	builder sq.StatementBuilderType
}

// NewQuestionDatabaseAdapter creates a new instance of QuestionDatabaseAdapter
func NewQuestionDatabaseAdapter(db *sqlx.DB, dialect database.Dialect) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db, dialect: dialect, builder: dialect.Builder()}
}

func (a *QuestionDatabaseAdapter) ListQuestions(ctx context.Context) ([]*domain.Question, error) {
	return a.selectQuestions(ctx, a.builder.Select(questionColumns...).From(questionsTable).OrderBy("id ASC"))
}

func (a *QuestionDatabaseAdapter) ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]*domain.Question, error) {
	return a.selectQuestions(ctx, a.builder.Select(questionColumns...).
		From(questionsTable).
		Where(sq.Eq{"category": categoryID}).
		OrderBy("id ASC"))
}

func (a *QuestionDatabaseAdapter) selectQuestions(ctx context.Context, b sq.SelectBuilder) ([]*domain.Question, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build question query: %w", err)
	}

	var rows []models.Question
	if err := a.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	questions := make([]*domain.Question, 0, len(rows))
	for i := range rows {
		questions = append(questions, toDomainQuestion(&rows[i]))
	}
	return questions, nil
}

// GetQuestionByID returns nil, nil when the question does not exist.
func (a *QuestionDatabaseAdapter) GetQuestionByID(ctx context.Context, id int64) (*domain.Question, error) {
	query, args, err := a.builder.Select(questionColumns...).
		From(questionsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build question query: %w", err)
	}

	var row models.Question
	if err := a.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question by ID %d: %w", id, err)
	}
	return toDomainQuestion(&row), nil
}

// SaveQuestion inserts the question and sets its generated ID.
func (a *QuestionDatabaseAdapter) SaveQuestion(ctx context.Context, question *domain.Question) error {
	if question == nil {
		return fmt.Errorf("cannot save nil question")
	}
	row := toModelQuestion(question)

	if a.dialect.UsesSequences {
		if err := a.db.GetContext(ctx, &row.ID, a.dialect.NextIDQuery(questionsTable)); err != nil {
			return fmt.Errorf("failed to allocate question ID: %w", err)
		}
		query, args, err := a.builder.Insert(questionsTable).
			Columns("id", "question", "answer", "category", "difficulty").
			Values(row.ID, row.Question, row.Answer, row.Category, row.Difficulty).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert: %w", err)
		}
		if _, err := a.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to insert question: %w", err)
		}
	} else {
		query, args, err := a.builder.Insert(questionsTable).
			Columns("question", "answer", "category", "difficulty").
			Values(row.Question, row.Answer, row.Category, row.Difficulty).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert: %w", err)
		}
		if err := a.db.QueryRowxContext(ctx, query, args...).Scan(&row.ID); err != nil {
			return fmt.Errorf("failed to insert question: %w", err)
		}
	}

	question.ID = row.ID
	return nil
}

// DeleteQuestion reports whether a row was removed.
func (a *QuestionDatabaseAdapter) DeleteQuestion(ctx context.Context, id int64) (bool, error) {
	query, args, err := a.builder.Delete(questionsTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build delete: %w", err)
	}

	result, err := a.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to delete question %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}

func toDomainQuestion(m *models.Question) *domain.Question {
	return &domain.Question{
		ID:         m.ID,
		Question:   m.Question,
		Answer:     m.Answer,
		Category:   m.Category,
		Difficulty: m.Difficulty,
	}
}

func toModelQuestion(q *domain.Question) *models.Question {
	return &models.Question{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}
