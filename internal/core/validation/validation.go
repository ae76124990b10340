package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/vncsmyrnk/polls/internal/core/domain"
)

// Validator wraps go-playground validator with the poll field rules.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()
	// The registration can only fail on an empty tag or nil func.
	_ = v.RegisterValidation("hexcolor6", validateHexColor)
	return &Validator{validate: v}
}

// Validate checks s and returns a *domain.ValidationError naming each failed field.
func (v *Validator) Validate(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate: %w", err)
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{
			Field:   fieldName(fe.Field()),
			Message: message(fe),
		})
	}
	return domain.NewValidationError(fields...)
}

func validateHexColor(fl validator.FieldLevel) bool {
	return domain.IsValidHexColor(fl.Field().String())
}

func fieldName(structField string) string {
	switch structField {
	case "PubDate":
		return "pub_date"
	case "Text":
		return "text"
	case "Color":
		return "color"
	default:
		return structField
	}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters", fe.Param())
	case "hexcolor6":
		return "Hex color is invalid"
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}
