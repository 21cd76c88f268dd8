// Package munge provides common helpers for converting the raw values
// that appear in query terms (path literals, timestamps, file types)
// into the representations the engine compares against.
package munge

import (
	"fmt"
	"os"
	"strings"
)

// NormalizeSeparators rewrites backslash path separators in a
// user-supplied pattern to the forward slashes used internally. It is
// idempotent, and it is applied only to patterns: entry paths produced
// by the walker are already canonical.
func NormalizeSeparators(pattern string) string {
	return strings.ReplaceAll(pattern, `\`, "/")
}

// ToFileType converts a one-letter file type (as used by the "type"
// term) into a predicate on an entry's mode.
func ToFileType(letter string) (func(os.FileMode) bool, error) {
	switch letter {
	case "f":
		return func(m os.FileMode) bool { return m.IsRegular() }, nil
	case "d":
		return func(m os.FileMode) bool { return m.IsDir() }, nil
	case "l":
		return func(m os.FileMode) bool { return m&os.ModeSymlink != 0 }, nil
	case "b", "c":
		return func(m os.FileMode) bool { return m&os.ModeDevice != 0 }, nil
	case "p":
		return func(m os.FileMode) bool { return m&os.ModeNamedPipe != 0 }, nil
	case "s":
		return func(m os.FileMode) bool { return m&os.ModeSocket != 0 }, nil
	default:
		return nil, fmt.Errorf("%v is not a valid file type. Valid file types are f, d, l, b, c, p, s", letter)
	}
}
