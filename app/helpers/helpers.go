package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/Rakhulsr/go-catalog/app/services"
	"github.com/go-playground/validator/v10"
)

type contextKey string

const ContextKeyUserID contextKey = "userID"

const maxBodyBytes = 1 << 20

// NewValidator reports fields by their json names.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

func FormatValidationErrors(errs validator.ValidationErrors) []services.FieldError {
	details := make([]services.FieldError, 0, len(errs))
	for _, err := range errs {
		field := err.Field()
		var msg string
		switch err.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", field)
		case "email":
			msg = fmt.Sprintf("%s must be a valid email address", field)
		case "url":
			msg = fmt.Sprintf("%s must be a valid URL", field)
		case "uuid", "uuid4":
			msg = fmt.Sprintf("%s must be a valid UUID", field)
		case "min", "gte":
			msg = fmt.Sprintf("%s must be at least %s", field, err.Param())
		case "max", "lte":
			msg = fmt.Sprintf("%s must be at most %s", field, err.Param())
		default:
			msg = fmt.Sprintf("%s failed the %s check", field, err.Tag())
		}
		details = append(details, services.FieldError{Message: msg, Field: field})
	}
	return details
}

// DecodeAndValidate reads a JSON body into dst and validates it. Any problem
// comes back as a *services.ValidationError.
func DecodeAndValidate(r *http.Request, v *validator.Validate, dst interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return services.NewValidationError("body", "request body is required")
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return services.NewValidationError(typeErr.Field, fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type))
		}
		return services.NewValidationError("body", "malformed JSON body")
	}

	if err := v.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return &services.ValidationError{Details: FormatValidationErrors(verrs)}
		}
		return err
	}
	return nil
}
