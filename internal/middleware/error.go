package middleware

import (
	"errors"
	"net/http"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Only these fixed messages reach clients; causes are logged.
var statusMessages = map[int]string{
	http.StatusBadRequest:          "Server cannot or will not process the request due to client-side error",
	http.StatusNotFound:            "Your requested resource was not found",
	http.StatusMethodNotAllowed:    "Method not allowed for the requested resource",
	http.StatusUnprocessableEntity: "Your request was not processable",
	http.StatusInternalServerError: "Internal server error experienced",
	http.StatusServiceUnavailable:  "Service unavailable",
}

// StatusMessage returns the client-facing message for an HTTP status.
func StatusMessage(status int) string {
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return http.StatusText(status)
}

// ErrorHandler is a centralized error handling middleware
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get().With(
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
		)
		if rid, ok := c.Locals("requestid").(string); ok {
			log = log.With(zap.String("request_id", rid))
		}

		status := http.StatusInternalServerError

		var domainErr *domain.DomainError
		var validationErrs domain.ValidationErrors
		var fiberErr *fiber.Error

		switch {
		case errors.As(err, &domainErr):
			status = mapDomainErrorToHTTPStatus(domainErr.Code)
			fields := []zap.Field{
				zap.String("code", string(domainErr.Code)),
				zap.String("message", domainErr.Message),
				zap.Int("status", status),
			}
			if domainErr.Err != nil {
				fields = append(fields, zap.Error(domainErr.Err))
			}
			if status >= http.StatusInternalServerError {
				log.Error("Domain error occurred", fields...)
			} else {
				log.Info("Request rejected", fields...)
			}
		case errors.As(err, &validationErrs):
			status = http.StatusUnprocessableEntity
			log.Info("Validation errors occurred", zap.Int("error_count", len(validationErrs)), zap.Error(validationErrs))
		case errors.As(err, &fiberErr):
			status = fiberErr.Code
			log.Warn("Fiber error occurred", zap.Int("code", fiberErr.Code), zap.String("message", fiberErr.Message))
		default:
			log.Error("Unknown error occurred", zap.Error(err))
		}

		return c.Status(status).JSON(dto.ErrorResponse{
			Success: false,
			Error:   status,
			Message: StatusMessage(status),
		})
	}
}

func mapDomainErrorToHTTPStatus(code domain.ErrorCode) int {
	switch code {
	case domain.ErrNotFound:
		return http.StatusNotFound
	case domain.ErrUnprocessable:
		return http.StatusUnprocessableEntity
	case domain.ErrBadRequest:
		return http.StatusBadRequest
	case domain.ErrUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
