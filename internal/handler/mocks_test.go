package handler_test

import (
	"context"
	"time"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
)

// --- Manual Mocks ---

type MockQuestionService struct {
	ListQuestionsFunc          func(ctx context.Context, page int) (*dto.QuestionListResponse, error)
	DeleteQuestionFunc         func(ctx context.Context, id int64, page int) (*dto.DeleteQuestionResponse, error)
	CreateQuestionFunc         func(ctx context.Context, req *dto.CreateQuestionRequest, page int) (*dto.CreateQuestionResponse, error)
	SearchQuestionsFunc        func(ctx context.Context, req *dto.SearchQuestionsRequest) (*dto.SearchQuestionsResponse, error)
	GetQuestionsByCategoryFunc func(ctx context.Context, categoryID int64) (*dto.CategoryQuestionsResponse, error)
}

func (m *MockQuestionService) ListQuestions(ctx context.Context, page int) (*dto.QuestionListResponse, error) {
	if m.ListQuestionsFunc != nil {
		return m.ListQuestionsFunc(ctx, page)
	}
	panic("MockQuestionService.ListQuestionsFunc not implemented")
}

func (m *MockQuestionService) DeleteQuestion(ctx context.Context, id int64, page int) (*dto.DeleteQuestionResponse, error) {
	if m.DeleteQuestionFunc != nil {
		return m.DeleteQuestionFunc(ctx, id, page)
	}
	panic("MockQuestionService.DeleteQuestionFunc not implemented")
}

func (m *MockQuestionService) CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest, page int) (*dto.CreateQuestionResponse, error) {
	if m.CreateQuestionFunc != nil {
		return m.CreateQuestionFunc(ctx, req, page)
	}
	panic("MockQuestionService.CreateQuestionFunc not implemented")
}

func (m *MockQuestionService) SearchQuestions(ctx context.Context, req *dto.SearchQuestionsRequest) (*dto.SearchQuestionsResponse, error) {
	if m.SearchQuestionsFunc != nil {
		return m.SearchQuestionsFunc(ctx, req)
	}
	panic("MockQuestionService.SearchQuestionsFunc not implemented")
}

func (m *MockQuestionService) GetQuestionsByCategory(ctx context.Context, categoryID int64) (*dto.CategoryQuestionsResponse, error) {
	if m.GetQuestionsByCategoryFunc != nil {
		return m.GetQuestionsByCategoryFunc(ctx, categoryID)
	}
	panic("MockQuestionService.GetQuestionsByCategoryFunc not implemented")
}

type MockCategoryService struct {
	GetAllCategoriesFunc func(ctx context.Context) (*dto.CategoryListResponse, error)
	CategoriesFunc       func(ctx context.Context) ([]*domain.Category, error)
}

func (m *MockCategoryService) GetAllCategories(ctx context.Context) (*dto.CategoryListResponse, error) {
	if m.GetAllCategoriesFunc != nil {
		return m.GetAllCategoriesFunc(ctx)
	}
	panic("MockCategoryService.GetAllCategoriesFunc not implemented")
}

func (m *MockCategoryService) Categories(ctx context.Context) ([]*domain.Category, error) {
	if m.CategoriesFunc != nil {
		return m.CategoriesFunc(ctx)
	}
	panic("MockCategoryService.CategoriesFunc not implemented")
}

type MockQuizService struct {
	PlayQuizFunc func(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error)
}

func (m *MockQuizService) PlayQuiz(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error) {
	if m.PlayQuizFunc != nil {
		return m.PlayQuizFunc(ctx, req)
	}
	panic("MockQuizService.PlayQuizFunc not implemented")
}

type MockPinger struct {
	Err error
}

func (m *MockPinger) PingContext(ctx context.Context) error { return m.Err }

type MockCache struct {
	PingErr error
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) { return "", domain.ErrCacheMiss }
func (m *MockCache) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	return nil
}
func (m *MockCache) Delete(ctx context.Context, key string) error { return nil }
func (m *MockCache) Ping(ctx context.Context) error              { return m.PingErr }
