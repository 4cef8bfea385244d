package cxx

import (
	"errors"
	"fmt"
)

// ParseError reports a file whose text was not well-formed enough to
// extract from (unbalanced braces, unterminated strings, etc.).
// It is recorded per file and never aborts the overall run.
type ParseError struct {
	Path string
	Line int
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: source text is not parseable", e.Path, e.Line)
	}
	return fmt.Sprintf("%s: source text is not parseable", e.Path)
}

// IsParseError reports whether err is (or wraps) a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
