package projectkeys

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPath is returned when a dotted key path is empty or contains an
// empty segment (leading, trailing, or doubled dot).
var ErrInvalidPath = errors.New("invalid key path")

// KeyPath is an ordered sequence of key segments addressing a nested location
// in a configuration document. It is produced by ParsePath and not modified
// afterwards.
type KeyPath []string

// ParsePath splits a dotted string into a KeyPath.
// "models.my_project.materialized" becomes ["models", "my_project",
// "materialized"]. The empty string and any path with an empty segment fail
// with ErrInvalidPath.
func ParsePath(raw string) (KeyPath, error) {
	if raw == "" {
		return nil, fmt.Errorf("%w: path is empty", ErrInvalidPath)
	}

	segments := strings.Split(raw, ".")
	for i, segment := range segments {
		if segment == "" {
			return nil, fmt.Errorf("%w: empty segment at position %d in %q", ErrInvalidPath, i+1, raw)
		}
	}

	return KeyPath(segments), nil
}

// String joins the path segments back with dots, round-tripping the input of
// ParsePath.
func (p KeyPath) String() string {
	return strings.Join(p, ".")
}
