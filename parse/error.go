package parse

import "fmt"

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	// ErrNeedInput means the parser required more elements than the
	// buffer holds and no more data can arrive.
	ErrNeedInput ErrorKind = iota
	// ErrElementMismatch means a single element did not equal the
	// expected one.
	ErrElementMismatch
	// ErrSequenceMismatch means a literal chunk did not match the input.
	ErrSequenceMismatch
	// ErrPredicateFailed means an element or repetition predicate was
	// not satisfied.
	ErrPredicateFailed
	// ErrIncomplete means ParseOnly flushed the parse with an empty
	// chunk and it still asked for more input.
	ErrIncomplete
)

// Error is the structured failure produced by a parser. Errors are values
// handed to the failure continuation, never panics: that is what lets
// OrElse, Optional and Repeat catch a nested failure and substitute
// alternate behavior.
type Error struct {
	Kind     ErrorKind
	Required int    // ErrNeedInput: element count still required
	Expected any    // ErrElementMismatch, ErrSequenceMismatch
	Actual   any    // ErrElementMismatch, ErrSequenceMismatch
	Desc     string // ErrPredicateFailed
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrNeedInput:
		return fmt.Sprintf("not enough input: %d more element(s) required", e.Required)
	case ErrElementMismatch:
		return fmt.Sprintf("expected element %v, got %v", e.Expected, e.Actual)
	case ErrSequenceMismatch:
		return fmt.Sprintf("expected sequence %v, got %v", e.Expected, e.Actual)
	case ErrPredicateFailed:
		if e.Desc == "" {
			return "predicate not satisfied"
		}
		return fmt.Sprintf("expected %s", e.Desc)
	case ErrIncomplete:
		return "incomplete parse at end of input"
	}
	return "parse error"
}

// Is makes errors.Is match on kind, so callers can test against a bare
// &Error{Kind: ...} sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func needInput(n int) *Error {
	return &Error{Kind: ErrNeedInput, Required: n}
}

func elementMismatch(expected, actual any) *Error {
	return &Error{Kind: ErrElementMismatch, Expected: expected, Actual: actual}
}

func sequenceMismatch(expected, actual any) *Error {
	return &Error{Kind: ErrSequenceMismatch, Expected: expected, Actual: actual}
}

func predicateFailed(desc string) *Error {
	return &Error{Kind: ErrPredicateFailed, Desc: desc}
}

func incomplete() *Error {
	return &Error{Kind: ErrIncomplete}
}
