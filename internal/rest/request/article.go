package request

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/Zhi-Yan1103/NZ-Discovery/domain"
)

var validate = validator.New()

// Article is the typed request body for creating or updating an article.
// Validation is explicit and returns the full list of field errors in
// one pass instead of stopping at the first.
type Article struct {
	Title   string `json:"title" validate:"required,max=128"`
	Content string `json:"content" validate:"required"`
	Image   string `json:"image" validate:"omitempty,max=255"`
}

// Validate returns every invalid field, or nil.
func (r *Article) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) {
		fieldErrs := make(domain.ValidationErrors, 0, len(invalid))
		for _, fe := range invalid {
			fieldErrs = append(fieldErrs, domain.FieldError{
				Field:   fe.Field(),
				Message: messageFor(fe),
			})
		}
		return fieldErrs
	}
	return err
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "is not valid"
	}
}

func (r *Article) ToDomain() domain.Article {
	return domain.Article{
		Title:   r.Title,
		Content: r.Content,
		Image:   r.Image,
	}
}
