package validation

import (
	"strings"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
)

const (
	maxTextLength = 1000
	maxTermLength = 200
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCreateQuestion requires all four question fields.
func (v *Validator) ValidateCreateQuestion(req *dto.CreateQuestionRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	errors = append(errors, validateText("question", req.Question)...)
	errors = append(errors, validateText("answer", req.Answer)...)

	if req.Difficulty == nil {
		errors = append(errors, domain.NewMissingFieldError("difficulty"))
	} else if *req.Difficulty < 0 || int64(*req.Difficulty) > domain.MaxStoredInt {
		errors = append(errors, domain.NewInvalidFormatError("difficulty", int64(*req.Difficulty)))
	}

	if req.Category == nil {
		errors = append(errors, domain.NewMissingFieldError("category"))
	} else if *req.Category <= 0 || int64(*req.Category) > domain.MaxStoredInt {
		errors = append(errors, domain.NewInvalidFormatError("category", int64(*req.Category)))
	}

	return errors
}

// ValidateSearch requires a non-blank term.
func (v *Validator) ValidateSearch(req *dto.SearchQuestionsRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.Search == nil || strings.TrimSpace(*req.Search) == "" {
		errors = append(errors, domain.NewMissingFieldError("search"))
	} else if len(*req.Search) > maxTermLength {
		errors = append(errors, domain.NewInvalidFormatError("search", "too long"))
	}

	return errors
}

func validateText(field string, value *string) domain.ValidationErrors {
	if value == nil || strings.TrimSpace(*value) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError(field)}
	}
	if len(*value) > maxTextLength {
		return domain.ValidationErrors{domain.NewInvalidFormatError(field, "too long")}
	}
	return nil
}
