package handler

import (
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuestionHandler handles question-related HTTP requests
type QuestionHandler struct {
	service service.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler instance
func NewQuestionHandler(service service.QuestionService) *QuestionHandler {
	return &QuestionHandler{service: service}
}

// ListQuestions godoc
// @Summary List questions
// @Description Returns one page of 10 questions with the total count and all categories
// @Tags questions
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.QuestionListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions [get]
func (h *QuestionHandler) ListQuestions(c *fiber.Ctx) error {
	resp, err := h.service.ListQuestions(c.UserContext(), pageParam(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Description Deletes a question and returns the requested page of the remaining questions
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.DeleteQuestionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.service.DeleteQuestion(c.UserContext(), id, pageParam(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// PostQuestions godoc
// @Summary Create or search questions
// @Description Searches when the body has "search", otherwise creates a question
// @Tags questions
// @Accept json
// @Produce json
// @Param page query int false "Page number for the create response" default(1)
// @Param request body dto.PostQuestionsRequest true "Search term or new question"
// @Success 200 {object} dto.CreateQuestionResponse
// @Success 200 {object} dto.SearchQuestionsResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions [post]
func (h *QuestionHandler) PostQuestions(c *fiber.Ctx) error {
	var req dto.PostQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewUnprocessableError("malformed request body", err)
	}

	if req.IsSearch() {
		resp, err := h.service.SearchQuestions(c.UserContext(), &req.SearchQuestionsRequest)
		if err != nil {
			return err
		}
		return c.JSON(resp)
	}

	resp, err := h.service.CreateQuestion(c.UserContext(), &req.CreateQuestionRequest, pageParam(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SearchQuestions godoc
// @Summary Search questions
// @Description Case-insensitive substring search over question text
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.SearchQuestionsRequest true "Search term"
// @Success 200 {object} dto.SearchQuestionsResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions/search [post]
func (h *QuestionHandler) SearchQuestions(c *fiber.Ctx) error {
	var req dto.SearchQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewUnprocessableError("malformed request body", err)
	}
	resp, err := h.service.SearchQuestions(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
