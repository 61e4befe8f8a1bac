/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package sfl

import (
	"strconv"
	"strings"
)

const (
	headerLines = 4
	glyphFields = 8
)

var glyphColumns = [glyphFields]string{
	"id", "x", "y", "width", "height", "xoffset", "yoffset", "xadvance",
}

// parse converts the text of a descriptor into a Font. ImagePath is set to
// the raw value of the third line; callers decide how to resolve it.
func parse(contents string) (*Font, error) {
	lines := splitLines(contents)
	if len(lines) < headerLines+1 {
		return nil, ErrTooFewLines
	}

	name := lines[0]
	size, lineHeight, err := parseMetrics(lines[1])
	if err != nil {
		return nil, err
	}
	imagePath := lines[2]

	count, err := strconv.ParseUint(lines[3], 10, 32)
	if err != nil {
		return nil, &FieldError{Field: "glyph count", Line: 4, Err: err}
	}

	rest := lines[headerLines:]
	if uint64(len(rest)) < count {
		return nil, &CountError{Expected: int(count), Actual: len(rest)}
	}

	glyphs := make(map[uint32]Glyph, count)
	for i, line := range rest[:count] {
		g, err := parseGlyph(line, i+1)
		if err != nil {
			return nil, err
		}
		// later lines replace earlier ones with the same id
		glyphs[uint32(g.ID)] = g
	}

	return &Font{
		Name:       name,
		ImagePath:  imagePath,
		Glyphs:     glyphs,
		LineHeight: lineHeight,
		Size:       size,
	}, nil
}

// parseMetrics reads the second line. The first value is the point size and
// the second the line height.
func parseMetrics(line string) (size, lineHeight uint32, err error) {
	parts := strings.Split(line, " ")
	if len(parts) != 2 {
		return 0, 0, &FieldError{Field: "header", Line: 2, Err: ErrHeaderShape}
	}
	v, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return 0, 0, &FieldError{Field: "size", Line: 2, Err: err}
	}
	size = uint32(v)
	v, err = strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return 0, 0, &FieldError{Field: "line height", Line: 2, Err: err}
	}
	lineHeight = uint32(v)
	return size, lineHeight, nil
}

// parseGlyph reads one glyph line. index is the 1-based position of the glyph
// in the table. Values past the eighth are ignored.
func parseGlyph(line string, index int) (Glyph, error) {
	parts := strings.Split(line, " ")
	if len(parts) < glyphFields {
		return Glyph{}, &ShapeError{Glyph: index, Parts: len(parts)}
	}

	var v [glyphFields]int32
	for i := range v {
		n, err := strconv.ParseInt(parts[i], 10, 32)
		if err != nil {
			return Glyph{}, &FieldError{
				Field: glyphColumns[i],
				Line:  headerLines + index,
				Glyph: index,
				Err:   err,
			}
		}
		v[i] = int32(n)
	}
	if _, ok := ConvNumber[uint32](v[0]); !ok {
		return Glyph{}, &FieldError{Field: "id", Line: headerLines + index, Glyph: index, Err: errRangeCheck}
	}

	return Glyph{
		ID:       v[0],
		X:        v[1],
		Y:        v[2],
		Width:    v[3],
		Height:   v[4],
		XOffset:  v[5],
		YOffset:  v[6],
		XAdvance: v[7],
	}, nil
}

// splitLines splits s at '\n', dropping a trailing '\r' from each line. A
// final line terminator does not start another line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
