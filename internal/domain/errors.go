package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

// ValidationError reports every failing field of a submission at once, so a
// form can mark all bad fields in a single round trip.
type ValidationError struct {
	// Fields maps a field name ("name", "email") to a user-facing message.
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fmt.Sprintf("invalid input: %s", strings.Join(fields, ", "))
}

// Unwrap makes errors.Is(err, ErrInvalidInput) match validation errors.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
