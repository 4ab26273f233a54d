package domain

import "context"

// QuestionRepository defines the interface for question persistence
type QuestionRepository interface {
	// ListQuestions returns every question ordered by ascending ID
	ListQuestions(ctx context.Context) ([]*Question, error)

	// ListQuestionsByCategory returns the questions of one category ordered by ascending ID
	ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]*Question, error)

	// GetQuestionByID returns nil, nil when no question has the given ID
	GetQuestionByID(ctx context.Context, id int64) (*Question, error)

	// SaveQuestion persists a new question and sets its ID
	SaveQuestion(ctx context.Context, question *Question) error

	// DeleteQuestion reports whether a row was removed
	DeleteQuestion(ctx context.Context, id int64) (bool, error)
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// GetAllCategories returns all categories ordered by ascending ID
	GetAllCategories(ctx context.Context) ([]*Category, error)
}
