package aoc

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrPrecondition is returned, wrapped, when an algorithm is asked for
// something its input cannot provide, such as more digits than a line has.
var ErrPrecondition = errors.New("precondition violated")

func preconditionf(format string, args ...any) error {
	return errors.Wrapf(ErrPrecondition, format, args...)
}

// ParseError records which line of input could not be parsed.
type ParseError struct {
	Line string
	Err  error
}

func (e *ParseError) Error() string {
	line := e.Line
	if len(line) > 40 {
		line = line[:40] + "..."
	}
	return fmt.Sprintf("parsing %q: %v", line, e.Err)
}

func (e *ParseError) Cause() error { return e.Err }

func (e *ParseError) Unwrap() error { return e.Err }

// ParseErrorf returns a *ParseError for line.
func ParseErrorf(line, format string, args ...any) error {
	return &ParseError{Line: line, Err: errors.Errorf(format, args...)}
}
