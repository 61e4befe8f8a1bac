/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package sfl loads bitmap font descriptors in the line oriented .sfl format.
//
// A descriptor names the font, gives its point size and line height, points at
// an atlas image and lists one glyph per line:
//
//	Iosevka
//	32 56
//	iosevka.png
//	2
//	65 77 168 18 33 2 23 22
//	66 96 168 16 33 3 23 22
package sfl

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xef, 0xbb, 0xbf}
	bomUTF16BE = []byte{0xfe, 0xff}
	bomUTF16LE = []byte{0xff, 0xfe}
)

// Load reads and parses the descriptor at path. The image path of the
// returned Font is resolved against the directory holding the descriptor.
func Load(path string) (*Font, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	dir, err := parentDir(path)
	if err != nil {
		return nil, err
	}
	contents, err := decodeText(b)
	if err != nil {
		return nil, err
	}

	f, err := parse(contents)
	if err != nil {
		return nil, err
	}
	f.ImagePath = filepath.Join(dir, f.ImagePath)
	return f, nil
}

// LoadString parses descriptor contents already held in memory. imagePath is
// used as the atlas path as given; the third line of the descriptor is
// ignored.
func LoadString(contents, imagePath string) (*Font, error) {
	f, err := parse(contents)
	if err != nil {
		return nil, err
	}
	f.ImagePath = imagePath
	return f, nil
}

// Parse reads a descriptor from r and otherwise behaves like LoadString.
// UTF-16 input is accepted when it starts with a byte order mark.
func Parse(r io.Reader, imagePath string) (*Font, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	contents, err := decodeText(b)
	if err != nil {
		return nil, err
	}
	return LoadString(contents, imagePath)
}

// ValidateBytes checks that b holds a well formed descriptor.
func ValidateBytes(b []byte) error {
	contents, err := decodeText(b)
	if err != nil {
		return err
	}
	_, err = parse(contents)
	return err
}

// decodeText returns b as UTF-8, honouring a leading byte order mark. Input
// without a UTF-16 mark must be valid UTF-8.
func decodeText(b []byte) (string, error) {
	if !bytes.HasPrefix(b, bomUTF16BE) && !bytes.HasPrefix(b, bomUTF16LE) &&
		!utf8.Valid(bytes.TrimPrefix(b, bomUTF8)) {
		return "", ErrInvalidUTF8
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func parentDir(path string) (string, error) {
	if path == "" {
		return "", ErrNoParent
	}
	dir := filepath.Dir(path)
	if dir == path {
		// a filesystem root has no parent
		return "", ErrNoParent
	}
	return dir, nil
}
