package handler

import (
	"trivia-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categories service.CategoryService
	questions  service.QuestionService
}

// NewCategoryHandler creates a new CategoryHandler instance
func NewCategoryHandler(categories service.CategoryService, questions service.QuestionService) *CategoryHandler {
	return &CategoryHandler{categories: categories, questions: questions}
}

// GetAllCategories godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoryListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories [get]
func (h *CategoryHandler) GetAllCategories(c *fiber.Ctx) error {
	resp, err := h.categories.GetAllCategories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuestionsByCategory godoc
// @Summary List questions of a category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} dto.CategoryQuestionsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories/{id}/questions [get]
func (h *CategoryHandler) GetQuestionsByCategory(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.questions.GetQuestionsByCategory(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
