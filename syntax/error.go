package syntax

import "fmt"

// ParseErrorKind enumerates the ways a pattern can fail to parse.
type ParseErrorKind uint8

const (
	// ErrInvalidEscape indicates a backslash followed by a character
	// outside the supported escape set.
	ErrInvalidEscape ParseErrorKind = iota

	// ErrInvalidRightParen indicates a right parenthesis with no
	// matching left parenthesis.
	ErrInvalidRightParen

	// ErrNoPrev indicates a repetition operator with no preceding
	// expression to repeat.
	ErrNoPrev

	// ErrNoRightParen indicates an unclosed group at the end of the
	// pattern.
	ErrNoRightParen

	// ErrEmpty indicates a pattern that denotes no expression at all.
	ErrEmpty
)

// ParseError describes a failure to parse a regular expression pattern.
// Pos is the rune index into the pattern; Char is the offending rune for
// kinds that carry one.
type ParseError struct {
	Kind ParseErrorKind
	Pos  int
	Char rune
}

// Error implements the error interface
func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrInvalidEscape:
		return fmt.Sprintf("parse error: invalid escape at position %d: %q", e.Pos, e.Char)
	case ErrInvalidRightParen:
		return fmt.Sprintf("parse error: unmatched right parenthesis at position %d", e.Pos)
	case ErrNoPrev:
		return fmt.Sprintf("parse error: no expression before repetition operator at position %d", e.Pos)
	case ErrNoRightParen:
		return "parse error: missing right parenthesis"
	case ErrEmpty:
		return "parse error: empty pattern"
	default:
		return fmt.Sprintf("parse error: unknown kind %d", e.Kind)
	}
}
