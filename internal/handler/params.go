package handler

import (
	"trivia-api/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// pageParam reads ?page=, falling back to 1 when absent or not a number.
func pageParam(c *fiber.Ctx) int {
	return c.QueryInt("page", 1)
}

// idParam parses a positive integer path parameter. Anything that cannot be
// a stored id is treated as a missing resource.
func idParam(c *fiber.Ctx, name string) (int64, error) {
	id, err := c.ParamsInt(name)
	if err != nil {
		return 0, domain.NewNotFoundError("invalid " + name + " parameter")
	}
	if id < 1 || int64(id) > domain.MaxStoredInt {
		return 0, domain.NewNotFoundError(name + " parameter out of range")
	}
	return int64(id), nil
}
