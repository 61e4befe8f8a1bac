package sfl

import (
	"errors"
	"fmt"
)

// ErrStructure is matched (via errors.Is) by every error reporting a descriptor
// whose line layout is wrong, as opposed to a single bad field.
var ErrStructure = errors.New("sfl: malformed descriptor")

var (
	// ErrTooFewLines is returned for input shorter than the four header lines
	// plus one glyph line.
	ErrTooFewLines = fmt.Errorf("%w: too few lines to initialize", ErrStructure)

	// ErrHeaderShape is wrapped by the FieldError returned when the second line
	// does not hold exactly two space separated values.
	ErrHeaderShape = errors.New("second line is not formatted as 'size line-height'")

	// ErrNoParent is returned by Load when the parent directory of the
	// descriptor cannot be determined.
	ErrNoParent = errors.New("sfl: unable to retrieve path parent")

	// ErrInvalidUTF8 is returned for descriptor bytes that are neither valid
	// UTF-8 nor UTF-16 introduced by a byte order mark.
	ErrInvalidUTF8 = errors.New("sfl: descriptor is not valid UTF-8")

	errRangeCheck = errors.New("value out of range")
)

// FieldError reports a scalar field that could not be converted to its
// integer type.
type FieldError struct {
	Field string // "size", "line height", "glyph count" or a glyph column name
	Line  int    // 1-based line number in the descriptor
	Glyph int    // 1-based glyph index, 0 for header fields
	Err   error
}

func (e *FieldError) Error() string {
	if e.Glyph > 0 {
		return fmt.Sprintf("sfl: error parsing %s of glyph %d: %v", e.Field, e.Glyph, e.Err)
	}
	return fmt.Sprintf("sfl: error parsing %s at line %d: %v", e.Field, e.Line, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// ShapeError reports a glyph line with fewer than eight values.
type ShapeError struct {
	Glyph int // 1-based glyph index
	Parts int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("sfl: too few parts in glyph %d: have %d, want %d", e.Glyph, e.Parts, glyphFields)
}

// CountError reports a declared glyph count larger than the number of lines
// following the header.
type CountError struct {
	Expected int
	Actual   int
}

func (e *CountError) Error() string {
	return fmt.Sprintf("sfl: glyph count (line 4) does not match glyph lines: declared %d, found %d",
		e.Expected, e.Actual)
}

func (e *CountError) Is(target error) bool { return target == ErrStructure }
