// Package validator adapts go-playground validation to Echo's Validator
// interface.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator validates bound request structs by their validate tags.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates the request validator used by the Echo server.
func New() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Validation failures surface as 400s
// with the validator's message.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
