// Package server serves résumés over HTTP, one page per language.
package server

import (
	"errors"
	"fmt"

	"github.com/jonathan/mycv/internal/repository"
)

// ErrResumeMissing indicates the data file for the requested language does not exist
type ErrResumeMissing struct {
	Lang string
	Path string
}

func (e *ErrResumeMissing) Error() string {
	return fmt.Sprintf("resume for language %s not found at %s", e.Lang, e.Path)
}

// loadFailure turns a repository error into the plain-text body sent to the client.
func loadFailure(err error) error {
	var readErr *repository.FileReadError
	if errors.As(err, &readErr) && readErr.NotExist() {
		return &ErrResumeMissing{Lang: readErr.Language.Code(), Path: readErr.Path}
	}
	return err
}
