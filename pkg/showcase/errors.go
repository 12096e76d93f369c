package showcase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Error types
var (
	// ErrContentNotFound indicates no content exists for a well-formed id.
	ErrContentNotFound = errors.New("content not found")

	// ErrInvalidContentID indicates a malformed content id. It is raised
	// before any store call so malformed ids never reach the repository.
	ErrInvalidContentID = errors.New("invalid content id")

	// ErrInvalidPage indicates a list request with page < 1.
	ErrInvalidPage = errors.New("page must be 1 or greater")

	// ErrPermissionDenied indicates the caller may not mutate the content.
	ErrPermissionDenied = errors.New("permission denied")
)

// FieldError describes one payload field that failed validation.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError reports every payload field that failed the declared shape.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, f := range e.Fields {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(f.Field)
		b.WriteString(": ")
		b.WriteString(f.Reason)
	}
	return b.String()
}

// Add records a failed field.
func (e *ValidationError) Add(field, reason string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
}

// ContentError wraps a repository failure with the operation that caused it.
// It marks server faults as opposed to the client-facing sentinels above.
type ContentError struct {
	ContentID uuid.UUID
	Op        string
	Err       error
}

func (e *ContentError) Error() string {
	if e.ContentID == uuid.Nil {
		return fmt.Sprintf("content operation %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("content operation %s failed for content %s: %v", e.Op, e.ContentID, e.Err)
}

func (e *ContentError) Unwrap() error {
	return e.Err
}
