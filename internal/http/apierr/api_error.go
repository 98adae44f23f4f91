package apierr

import (
	"errors"
	"net/http"

	govalidator "github.com/go-playground/validator/v10"

	"github.com/Chinmayee2524/inventory-tracker/pkg/validator"
	"github.com/Chinmayee2524/inventory-tracker/pkg/zerror"
)

// FieldError is a single field-level violation in an error response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the error response body for the API.
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`

	// StatusCode is the HTTP status for the response; it is not part of
	// the body.
	StatusCode int `json:"-"`
}

var InternalServerErr = ErrorResponse{
	Message:    "An unexpected error occurred",
	StatusCode: http.StatusInternalServerError,
}

// New maps an error to the response the caller should see. Unknown errors
// collapse to a generic 500 so internals never leak.
func New(err error) ErrorResponse {
	var zErr zerror.ZError
	if errors.As(err, &zErr) {
		return ErrorResponse{
			Message:    zErr.Msg(),
			StatusCode: zErrorStatusToHTTPStatus(zErr.Status()),
		}
	}

	var validationErrs govalidator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]FieldError, len(validationErrs))
		for i, fe := range validationErrs {
			details[i] = FieldError{
				Field:   fe.Field(),
				Message: validator.ValidationErrorMessage(fe),
			}
		}

		return ErrorResponse{
			Message:    "Invalid item data",
			Errors:     details,
			StatusCode: http.StatusBadRequest,
		}
	}

	return InternalServerErr
}

func zErrorStatusToHTTPStatus(status zerror.Status) int {
	switch status {
	case zerror.StatusBadRequest, zerror.StatusValidationFailed:
		return http.StatusBadRequest
	case zerror.StatusNotFound:
		return http.StatusNotFound
	case zerror.StatusConflict:
		return http.StatusConflict
	case zerror.StatusUnknown, zerror.StatusInternalServerError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
