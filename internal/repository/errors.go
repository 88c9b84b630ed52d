// Package repository loads per-language résumés from TOML data files.
package repository

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/jonathan/mycv/internal/types"
)

// FileReadError represents a data file that is missing or unreadable
type FileReadError struct {
	Language types.Language
	Path     string
	Cause    error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Cause)
}

func (e *FileReadError) Unwrap() error {
	return e.Cause
}

// NotExist reports whether the file is missing rather than unreadable.
func (e *FileReadError) NotExist() bool {
	return errors.Is(e.Cause, fs.ErrNotExist)
}

// ParseError represents data file content that does not match the résumé schema
type ParseError struct {
	Language types.Language
	Path     string
	Cause    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s resume %s: %v", e.Language, e.Path, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// LoadError is returned by New when one language fails to load.
// Cause is a *FileReadError or a *ParseError.
type LoadError struct {
	Language types.Language
	Cause    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load resume for language %s: %v", e.Language, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
