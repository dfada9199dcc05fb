package transport

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	slugRe  = regexp.MustCompile(`^[a-z0-9-]+$`)
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries structured per-field issues; the global error
// handler renders it as a 400 with the issues list attached.
type ValidationError struct {
	Issues []FieldIssue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "Validation failed"
	}
	parts := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", is.Field, is.Message))
	}
	return "Validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, msg string) {
	e.Issues = append(e.Issues, FieldIssue{Field: field, Message: msg})
}

func (e *ValidationError) orNil() error {
	if len(e.Issues) == 0 {
		return nil
	}
	return e
}

func validSlug(s string) bool  { return slugRe.MatchString(s) }
func validEmail(s string) bool { return emailRe.MatchString(s) }
