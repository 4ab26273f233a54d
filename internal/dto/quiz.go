package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"trivia-api/internal/domain"
)

// NoSearchResultsMessage replaces the questions list when a search matches nothing.
const NoSearchResultsMessage = "No questions found with search term"

// QuestionResponse is the JSON form of a question
type QuestionResponse struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// CategoryResponse is the JSON form of a category
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

func NewQuestionResponse(q *domain.Question) QuestionResponse {
	return QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

func NewCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Type: c.Type}
}

// NewQuestionResponses formats every question, returning an empty (non-nil) slice for no input.
func NewQuestionResponses(questions []*domain.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, NewQuestionResponse(q))
	}
	return out
}

func NewCategoryResponses(categories []*domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, NewCategoryResponse(c))
	}
	return out
}

// QuestionListResponse is returned by GET /questions
type QuestionListResponse struct {
	Success        bool               `json:"success"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
	Categories     []CategoryResponse `json:"categories"`
}

// DeleteQuestionResponse is returned by DELETE /questions/{id}
type DeleteQuestionResponse struct {
	Success        bool               `json:"success"`
	Deleted        int64              `json:"deleted"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
}

// CreateQuestionResponse is returned when a question is created
type CreateQuestionResponse struct {
	Success          bool               `json:"success"`
	InsertedQuestion int64              `json:"inserted question"`
	Questions        []QuestionResponse `json:"questions"`
	TotalQuestions   int                `json:"total_questions"`
}

// SearchQuestionsResponse holds either []QuestionResponse or NoSearchResultsMessage in Questions.
type SearchQuestionsResponse struct {
	Success        bool `json:"success"`
	Questions      any  `json:"questions"`
	TotalQuestions int  `json:"total_questions"`
}

// CategoryListResponse is returned by GET /categories
type CategoryListResponse struct {
	Success    bool               `json:"success"`
	Categories []CategoryResponse `json:"categories"`
}

// CategoryQuestionsResponse is returned by GET /categories/{id}/questions
type CategoryQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory int64              `json:"current_category"`
}

// QuizResponse is returned by POST /quizzes
type QuizResponse struct {
	Success  bool             `json:"success"`
	Question QuestionResponse `json:"question"`
}

// ErrorResponse is the envelope of every failed request
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// FlexInt decodes from a JSON number or a numeric string; the web client
// posts select values as strings.
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer %q", s)
		}
		*f = FlexInt(n)
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid integer %s", string(data))
	}
	*f = FlexInt(n)
	return nil
}

// CreateQuestionRequest fields are pointers so absent fields can be told apart from zero values.
type CreateQuestionRequest struct {
	Question   *string  `json:"question"`
	Answer     *string  `json:"answer"`
	Difficulty *FlexInt `json:"difficulty"`
	Category   *FlexInt `json:"category"`
}

type SearchQuestionsRequest struct {
	Search *string `json:"search"`
}

// PostQuestionsRequest is the body of the overloaded POST /questions: a
// search when Search is present, a create otherwise.
type PostQuestionsRequest struct {
	SearchQuestionsRequest
	CreateQuestionRequest
}

func (r *PostQuestionsRequest) IsSearch() bool {
	return r.Search != nil
}

// QuizCategory is the category object sent by the web client
type QuizCategory struct {
	ID   FlexInt `json:"id"`
	Type string  `json:"type"`
}

// QuizRequest asks for one question not in PreviousQuestions
type QuizRequest struct {
	Category          *FlexInt      `json:"category"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
	PreviousQuestions []int64       `json:"previous_questions"`
}

// CategoryFilter returns the requested category, or 0 for all categories.
func (r *QuizRequest) CategoryFilter() int64 {
	if r.Category != nil && *r.Category != 0 {
		return int64(*r.Category)
	}
	if r.QuizCategory != nil {
		return int64(r.QuizCategory.ID)
	}
	return 0
}

// HealthResponse is returned by GET /healthz
type HealthResponse struct {
	Success bool              `json:"success"`
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks"`
}
