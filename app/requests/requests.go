// Package requests handles request binding and form validation.
package requests

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"

	"casamento/pkg/response"
)

// ValidationError wraps govalidator's per-field messages.
type ValidationError struct {
	Errors url.Values
}

// Error implements the error interface.
func (v ValidationError) Error() string {
	return fmt.Sprintf("erro de validação: %v", v.Errors)
}

// ValidateStruct runs the given rules over an already-bound struct.
func ValidateStruct(data interface{}, rules govalidator.MapData, messages govalidator.MapData) error {
	opts := govalidator.Options{
		Data:          data,
		Rules:         rules,
		TagIdentifier: "valid",
		Messages:      messages,
	}

	if errs := govalidator.New(opts).ValidateStruct(); len(errs) > 0 {
		return ValidationError{Errors: errs}
	}

	return nil
}

// RespondError maps a validation failure to the right response: rule
// violations become a 422 with per-field messages, anything else (bad JSON,
// extra checks) a 400.
func RespondError(c *gin.Context, err error) {
	var ve ValidationError
	if errors.As(err, &ve) {
		response.ValidationError(c, ve.Errors)
		return
	}
	response.BadRequest(c, err)
}

// ValidateRequest binds the JSON body into T and validates it.
func ValidateRequest[T any](c *gin.Context, rules govalidator.MapData, messages govalidator.MapData) (T, error) {
	var req T

	if err := c.ShouldBindJSON(&req); err != nil {
		var zero T
		return zero, fmt.Errorf("falha ao interpretar o corpo da requisição: %w", err)
	}

	if err := ValidateStruct(&req, rules, messages); err != nil {
		var zero T
		return zero, err
	}

	return req, nil
}
