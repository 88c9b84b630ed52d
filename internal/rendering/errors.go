// Package rendering renders résumés into self-contained HTML documents.
package rendering

import "fmt"

// TemplateError represents an error reading or parsing the résumé template
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError represents a failure while executing the template for one language
type RenderError struct {
	Lang    string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error (%s): %s: %v", e.Lang, e.Message, e.Cause)
	}
	return fmt.Sprintf("render error (%s): %s", e.Lang, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
