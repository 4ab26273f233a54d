package service

import (
	"context"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"
	"trivia-api/internal/validation"

	"go.uber.org/zap"
)

// QuestionService defines the interface for question-related operations
type QuestionService interface {
	ListQuestions(ctx context.Context, page int) (*dto.QuestionListResponse, error)
	DeleteQuestion(ctx context.Context, id int64, page int) (*dto.DeleteQuestionResponse, error)
	CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest, page int) (*dto.CreateQuestionResponse, error)
	SearchQuestions(ctx context.Context, req *dto.SearchQuestionsRequest) (*dto.SearchQuestionsResponse, error)
	GetQuestionsByCategory(ctx context.Context, categoryID int64) (*dto.CategoryQuestionsResponse, error)
}

type questionService struct {
	repo       domain.QuestionRepository
	categories CategoryService
	validator  *validation.Validator
}

// NewQuestionService creates a new instance of questionService
func NewQuestionService(repo domain.QuestionRepository, categories CategoryService, validator *validation.Validator) QuestionService {
	return &questionService{repo: repo, categories: categories, validator: validator}
}

// ListQuestions returns one page of questions; an empty page is NOT_FOUND.
func (s *questionService) ListQuestions(ctx context.Context, page int) (*dto.QuestionListResponse, error) {
	all, err := s.allQuestions(ctx)
	if err != nil {
		return nil, err
	}

	current := Paginate(all, page)
	if len(current) == 0 {
		return nil, domain.NewNotFoundError("no questions on requested page")
	}

	categories, err := s.categories.Categories(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.QuestionListResponse{
		Success:        true,
		Questions:      dto.NewQuestionResponses(current),
		TotalQuestions: len(all),
		Categories:     dto.NewCategoryResponses(categories),
	}, nil
}

func (s *questionService) DeleteQuestion(ctx context.Context, id int64, page int) (*dto.DeleteQuestionResponse, error) {
	existing, err := s.repo.GetQuestionByID(ctx, id)
	if err != nil {
		logger.Get().Error("QuestionService: failed to look up question", zap.Int64("id", id), zap.Error(err))
		return nil, domain.NewInternalError("failed to get question", err)
	}
	if existing == nil {
		return nil, domain.NewQuestionNotFoundError(id)
	}

	deleted, err := s.repo.DeleteQuestion(ctx, id)
	if err != nil {
		logger.Get().Error("QuestionService: failed to delete question", zap.Int64("id", id), zap.Error(err))
		return nil, domain.NewInternalError("failed to delete question", err)
	}
	if !deleted {
		// removed by a concurrent request between lookup and delete
		return nil, domain.NewQuestionNotFoundError(id)
	}

	all, err := s.allQuestions(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DeleteQuestionResponse{
		Success:        true,
		Deleted:        id,
		Questions:      dto.NewQuestionResponses(Paginate(all, page)),
		TotalQuestions: len(all),
	}, nil
}

func (s *questionService) CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest, page int) (*dto.CreateQuestionResponse, error) {
	if errs := s.validator.ValidateCreateQuestion(req); len(errs) > 0 {
		return nil, domain.NewUnprocessableError("invalid question", errs)
	}

	question := domain.NewQuestion(*req.Question, *req.Answer, int64(*req.Category), int(*req.Difficulty))
	if err := s.repo.SaveQuestion(ctx, question); err != nil {
		logger.Get().Error("QuestionService: failed to save question", zap.Error(err))
		return nil, domain.NewInternalError("failed to save question", err)
	}
	logger.Get().Info("QuestionService: question created", zap.Int64("id", question.ID), zap.Int64("category", question.Category))

	all, err := s.allQuestions(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.CreateQuestionResponse{
		Success:          true,
		InsertedQuestion: question.ID,
		Questions:        dto.NewQuestionResponses(Paginate(all, page)),
		TotalQuestions:   len(all),
	}, nil
}

// SearchQuestions answers with NoSearchResultsMessage instead of an empty list.
func (s *questionService) SearchQuestions(ctx context.Context, req *dto.SearchQuestionsRequest) (*dto.SearchQuestionsResponse, error) {
	if errs := s.validator.ValidateSearch(req); len(errs) > 0 {
		return nil, domain.NewUnprocessableError("invalid search", errs)
	}

	all, err := s.allQuestions(ctx)
	if err != nil {
		return nil, err
	}

	matches := MatchQuestions(*req.Search, all)
	if len(matches) == 0 {
		return &dto.SearchQuestionsResponse{
			Success:        true,
			Questions:      dto.NoSearchResultsMessage,
			TotalQuestions: 0,
		}, nil
	}

	return &dto.SearchQuestionsResponse{
		Success:        true,
		Questions:      dto.NewQuestionResponses(matches),
		TotalQuestions: len(matches),
	}, nil
}

func (s *questionService) GetQuestionsByCategory(ctx context.Context, categoryID int64) (*dto.CategoryQuestionsResponse, error) {
	questions, err := s.repo.ListQuestionsByCategory(ctx, categoryID)
	if err != nil {
		logger.Get().Error("QuestionService: failed to list category questions", zap.Int64("category", categoryID), zap.Error(err))
		return nil, domain.NewInternalError("failed to list questions", err)
	}
	if len(questions) == 0 {
		return nil, domain.NewNotFoundError("no questions in category")
	}

	return &dto.CategoryQuestionsResponse{
		Success:         true,
		Questions:       dto.NewQuestionResponses(questions),
		TotalQuestions:  len(questions),
		CurrentCategory: categoryID,
	}, nil
}

func (s *questionService) allQuestions(ctx context.Context) ([]*domain.Question, error) {
	all, err := s.repo.ListQuestions(ctx)
	if err != nil {
		logger.Get().Error("QuestionService: failed to list questions", zap.Error(err))
		return nil, domain.NewInternalError("failed to list questions", err)
	}
	return all, nil
}
