package theme

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/alexisbeaulieu97/boxterm/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme_name", func(fl validator.FieldLevel) bool {
			return namePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateDefinition checks names and required fields of a decoded theme.
// Colour references are checked when the definition is resolved.
func ValidateDefinition(def *Definition) error {
	if def == nil {
		return apperrors.NewValidationError("theme", "theme is nil", nil)
	}

	if err := validatorInstance().Struct(def); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// convertValidationError normalizes validator errors into theme validation errors.
func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok {
		fe := ves[0]
		field := fieldName(fe)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
		return apperrors.NewValidationError(field, msg, err)
	}

	return apperrors.NewValidationError("theme", err.Error(), err)
}

// fieldName turns "Definition.Styles[title].Surround" into "styles[title].surround".
func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		if idx := strings.IndexByte(part, '['); idx >= 0 {
			parts[i] = strings.ToLower(part[:idx]) + part[idx:]
			continue
		}
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
