package item

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrItemNotFound occurs when the requested ID is absent from the items table.
// The store signals absence by return value; the service translates that into
// this error so handlers can map it to 404.
var ErrItemNotFound = errors.New("item not found")

// ErrInvalidSearchField occurs when a search request names a field the search
// operation does not support.
var ErrInvalidSearchField = errors.New("invalid search field")

// HTTPStatus maps a domain error to an HTTP status code. Validation failures
// (ozzo errors) map to 422, unknown errors to 500 so internal detail is never
// leaked by accident.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidSearchField):
		return http.StatusUnprocessableEntity
	case isValidationError(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func isValidationError(err error) bool {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return true
	}
	var verr validation.Error
	return errors.As(err, &verr)
}
