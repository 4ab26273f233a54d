package service

import (
	"context"
	"errors"
	"math/rand/v2"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
)

// QuizService defines the interface for quiz-related operations
type QuizService interface {
	PlayQuiz(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error)
}

type quizService struct {
	repo domain.QuestionRepository
	intn func(n int) int
}

// NewQuizService creates a quiz service. A nil intn uses math/rand/v2.
func NewQuizService(repo domain.QuestionRepository, intn func(n int) int) QuizService {
	if intn == nil {
		intn = rand.IntN
	}
	return &quizService{repo: repo, intn: intn}
}

// PlayQuiz returns a random question from the requested category (0 for all)
// that is not in req.PreviousQuestions.
func (s *quizService) PlayQuiz(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error) {
	categoryID := req.CategoryFilter()

	var (
		pool []*domain.Question
		err  error
	)
	if categoryID == 0 {
		pool, err = s.repo.ListQuestions(ctx)
	} else {
		pool, err = s.repo.ListQuestionsByCategory(ctx, categoryID)
	}
	if err != nil {
		logger.Get().Error("QuizService: failed to load quiz pool", zap.Int64("category", categoryID), zap.Error(err))
		return nil, domain.NewInternalError("failed to load quiz pool", err)
	}

	question, err := SelectQuizQuestion(pool, req.PreviousQuestions, s.intn)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyQuizPool) || errors.Is(err, domain.ErrQuizExhausted) {
			logger.Get().Info("QuizService: no question to serve",
				zap.Int64("category", categoryID),
				zap.Int("previous", len(req.PreviousQuestions)),
				zap.Error(err))
			return nil, domain.NewBadRequestError("no question available for quiz", err)
		}
		return nil, domain.NewInternalError("failed to select quiz question", err)
	}

	return &dto.QuizResponse{
		Success:  true,
		Question: dto.NewQuestionResponse(question),
	}, nil
}
