package domain

import (
	"errors"
	"math"
)

// MaxStoredInt is the largest id, category or difficulty the INTEGER columns hold.
const MaxStoredInt int64 = math.MaxInt32

var (
	// ErrEmptyQuizPool means no question matched the quiz filter at all.
	ErrEmptyQuizPool = errors.New("no questions available")
	// ErrQuizExhausted means every candidate was already served.
	ErrQuizExhausted = errors.New("all questions in pool were already served")
)

// Category represents a named grouping of questions
type Category struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// Question represents a trivia question. Category refers to a Category ID
// but is not checked against the categories table.
type Question struct {
	ID         int64
	Question   string
	Answer     string
	Category   int64
	Difficulty int
}

// NewQuestion creates a Question that has not been persisted yet
func NewQuestion(question, answer string, category int64, difficulty int) *Question {
	return &Question{
		Question:   question,
		Answer:     answer,
		Category:   category,
		Difficulty: difficulty,
	}
}
