package filestore

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound    = errors.New("file not found")
	ErrInvalidPath = errors.New("invalid file path")
)

// Store reads and writes files by slash-separated names relative to a base
// directory.
type Store interface {
	Read(name string) ([]byte, error)
	Write(name string, data []byte) error
	Close() error
}

// ValidateName rejects names that are empty, absolute, contain backslashes or
// NUL bytes, or carry empty, "." or ".." segments. Names are split on '/'
// only, never with host path rules.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidPath)
	}
	if strings.ContainsAny(name, "\\\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidPath, name)
	}
	for _, segment := range strings.Split(name, "/") {
		switch segment {
		case "", ".", "..":
			return fmt.Errorf("%w: %q", ErrInvalidPath, name)
		}
	}
	return nil
}
