package query

import "fmt"

// ParseError represents a malformed query term. It is raised only
// during query compilation and propagates to the caller, which is
// expected to reject the whole query. Evaluation never produces one.
type ParseError struct {
	// Term is the name of the offending term, e.g. "name" or "iname".
	Term   string
	reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse the '%v' term: %v", e.Term, e.reason)
}

// NewParseError creates a new ParseError object for the given term.
func NewParseError(term string, format string, a ...interface{}) *ParseError {
	return &ParseError{Term: term, reason: fmt.Sprintf(format, a...)}
}

// IsParseError returns true if err is a ParseError, false otherwise.
func IsParseError(err error) bool {
	_, ok := err.(*ParseError)
	return ok
}
