package blogportal

import (
	"errors"
	"strings"
)

// ErrConflict is returned when the store rejects a mutation because of a
// unique or foreign key constraint (duplicate slug/userName/email, or
// deleting a category still referenced by articles).
var ErrConflict = errors.New("conflict")

// ErrUnknownAuthor is returned when the caller identity does not resolve
// to an existing user.
var ErrUnknownAuthor = errors.New("unknown author")

// NotFoundError is returned when an id has no row.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	return e.Resource + " not found"
}

// FieldError describes a single violated field constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the structured per-field error list produced by the
// entity validators. It is never collapsed into a generic message.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, fe := range v {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
