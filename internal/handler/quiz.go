package handler

import (
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{service: service}
}

// PlayQuiz godoc
// @Summary Next quiz question
// @Description Returns a random question from the category (0 or absent for all) that is not in previous_questions
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.QuizRequest true "Category and previously served question IDs"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes [post]
func (h *QuizHandler) PlayQuiz(c *fiber.Ctx) error {
	var req dto.QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewBadRequestError("malformed quiz request", err)
	}
	if category := req.CategoryFilter(); category < 0 || category > domain.MaxStoredInt {
		return domain.NewBadRequestError("quiz category out of range", nil)
	}
	resp, err := h.service.PlayQuiz(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
