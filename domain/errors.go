package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrForbidden will throw if the caller is authenticated but not allowed
	ErrForbidden = errors.New("you are not allowed to perform this action")
	// ErrUnauthorized will throw if no valid credentials were supplied
	ErrUnauthorized = errors.New("authentication required")
	// ErrCacheMiss will throw if the requested key is not in the cache
	ErrCacheMiss = errors.New("cache miss")
)

// FieldError describes a single invalid field in a request body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every invalid field of a request so the
// client gets the full list in one round trip.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, fe := range v {
		msgs[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}
