package heredity

import (
	"errors"
	"fmt"
)

// ErrPedigreeTooLarge is returned when a pedigree has more people than the
// configured guard allows. Inference time grows as 2^k * 3^n.
var ErrPedigreeTooLarge = errors.New("pedigree too large for exact inference")

// ValidationError reports a structurally malformed pedigree. It is detected
// while loading, before any inference work starts.
type ValidationError struct {
	// Person is the record at fault, if there is one.
	Person string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Person == "" {
		return "invalid pedigree: " + e.Reason
	}
	return fmt.Sprintf("invalid pedigree: %s: %s", e.Person, e.Reason)
}

// InferenceError reports degenerate evidence: a person's accumulated
// distribution summed to zero, so the evidence has zero probability under
// the tables.
type InferenceError struct {
	Person   string
	Variable string // "gene" or "trait"
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("degenerate evidence: %s distribution of %s sums to zero", e.Variable, e.Person)
}

func invalid(person, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Person: person, Reason: fmt.Sprintf(format, args...)}
}
