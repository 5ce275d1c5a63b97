package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/nfrund/gamma/internal/icons"
)

// FieldError is a single rule a content field broke.
type FieldError struct {
	Field string
	Rule  string
}

// ValidationError lists every problem found in a content document.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + " (" + f.Rule + ")"
	}
	return "invalid content: " + strings.Join(parts, ", ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Icon names are symbolic; they must resolve to a registered glyph.
	if err := v.RegisterValidation("icon", func(fl validator.FieldLevel) bool {
		return icons.Known(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("content: register icon validation: %v", err))
	}
	return v
}

// Validate checks p against the content rules. Service cards additionally
// require a background image.
func Validate(p *Page) error {
	var out []FieldError

	if err := validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validate content: %w", err)
		}
		for _, fe := range verrs {
			out = append(out, FieldError{Field: fe.Namespace(), Rule: fe.Tag()})
		}
	}

	for i, c := range p.Services.Cards {
		if c.ImageURL == "" {
			out = append(out, FieldError{
				Field: fmt.Sprintf("Page.Services.Cards[%d].ImageURL", i),
				Rule:  "required",
			})
		}
	}

	if len(out) > 0 {
		return &ValidationError{Fields: out}
	}
	return nil
}
