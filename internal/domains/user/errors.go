package user

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrUserNotFound occurs when the requested ID (or username/email lookup) has
// no match in the users table.
var ErrUserNotFound = errors.New("user not found")

// ErrUsernameTaken occurs when a create or update would duplicate an existing
// username. Conflicts are distinct from validation failures.
var ErrUsernameTaken = errors.New("username already exists")

// ErrEmailTaken occurs when a create or update would duplicate an existing
// email address.
var ErrEmailTaken = errors.New("email already exists")

// HTTPStatus maps a domain error to an HTTP status code: 404 for missing
// users, 400 for uniqueness conflicts, 422 for validation failures and 500
// for anything unexpected.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUsernameTaken), errors.Is(err, ErrEmailTaken):
		return http.StatusBadRequest
	case isValidationError(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// IsConflict reports whether err is a uniqueness violation.
func IsConflict(err error) bool {
	return errors.Is(err, ErrUsernameTaken) || errors.Is(err, ErrEmailTaken)
}

func isValidationError(err error) bool {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return true
	}
	var verr validation.Error
	return errors.As(err, &verr)
}
