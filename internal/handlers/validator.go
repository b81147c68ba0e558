package handlers

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator builds the validator instance used by the custom request
// decoders, with the notblank rule the name and message fields rely on.
func NewValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for an empty tag name.
	_ = v.RegisterValidation("notblank", validateNotBlank)

	return v
}

// validateNotBlank rejects strings that are empty or whitespace-only. Unlike
// required, it does not accept strings made entirely of spaces.
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
