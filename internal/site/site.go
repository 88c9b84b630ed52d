// Package site writes the static, one-page-per-language build of the résumé.
package site

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jonathan/mycv/internal/i18n"
	"github.com/jonathan/mycv/internal/rendering"
	"github.com/jonathan/mycv/internal/repository"
	"github.com/jonathan/mycv/internal/types"
)

const (
	indexFile = "index.html"
	textFile  = "resume.txt"
	pdfFile   = "resume.pdf"
)

// Printer converts a rendered HTML document to PDF.
type Printer interface {
	PrintHTML(ctx context.Context, html string) ([]byte, error)
}

// Builder renders every supported language into OutputDir/{code}/index.html
// and copies DefaultLanguage to OutputDir/index.html.
type Builder struct {
	Repo      repository.ResumeRepository
	Renderer  rendering.Renderer
	OutputDir string

	// DefaultLanguage is the page copied to the output root. The zero value
	// is types.DefaultLanguage.
	DefaultLanguage types.Language

	// Fresh rereads data files instead of using the repository cache.
	Fresh bool

	// TextCopy also writes a plain-text resume.txt next to each page.
	TextCopy bool

	// Printer, when set, also writes resume.pdf next to each page.
	Printer Printer

	Logger *slog.Logger
}

// Result lists the files written by Build, in write order.
type Result struct {
	Files []string
}

// BuildError reports the language and step that stopped the build
type BuildError struct {
	Lang  types.Language
	Step  string
	Cause error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build failed for %s at %s: %v", e.Lang, e.Step, e.Cause)
}

func (e *BuildError) Unwrap() error {
	return e.Cause
}

// Build renders languages sequentially and stops at the first failure. Files
// written before the failure are left in place.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	logger := b.Logger
	if logger == nil {
		logger = slog.Default()
	}

	result := &Result{}
	var defaultHTML []byte

	for _, lang := range types.Languages() {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		html, err := b.render(lang)
		if err != nil {
			return result, err
		}

		dir := filepath.Join(b.OutputDir, lang.Code())
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return result, &BuildError{Lang: lang, Step: "create directory", Cause: err}
		}

		page := filepath.Join(dir, indexFile)
		if err := os.WriteFile(page, []byte(html), 0o644); err != nil {
			return result, &BuildError{Lang: lang, Step: "write page", Cause: err}
		}
		result.Files = append(result.Files, page)
		logger.Info("page written", "lang", lang.Code(), "path", page)

		if b.TextCopy {
			path, err := b.writeText(dir, lang, html)
			if err != nil {
				return result, err
			}
			result.Files = append(result.Files, path)
		}

		if b.Printer != nil {
			path, err := b.writePDF(ctx, dir, lang, html)
			if err != nil {
				return result, err
			}
			result.Files = append(result.Files, path)
		}

		if lang == b.DefaultLanguage {
			defaultHTML = []byte(html)
		}
	}

	root := filepath.Join(b.OutputDir, indexFile)
	if err := os.WriteFile(root, defaultHTML, 0o644); err != nil {
		return result, &BuildError{Lang: b.DefaultLanguage, Step: "copy default page", Cause: err}
	}
	result.Files = append(result.Files, root)
	logger.Info("default page written", "lang", b.DefaultLanguage.Code(), "path", root)

	return result, nil
}

func (b *Builder) render(lang types.Language) (string, error) {
	var resume *types.Resume
	if b.Fresh {
		loaded, err := b.Repo.Load(lang)
		if err != nil {
			return "", &BuildError{Lang: lang, Step: "load", Cause: err}
		}
		resume = loaded
	} else {
		cached, ok := b.Repo.Get(lang)
		if !ok {
			return "", &BuildError{Lang: lang, Step: "load", Cause: fmt.Errorf("no resume cached for %s", lang)}
		}
		resume = cached
	}

	html, err := b.Renderer.Render(resume, i18n.New(lang), lang.Code())
	if err != nil {
		return "", &BuildError{Lang: lang, Step: "render", Cause: err}
	}
	return html, nil
}

func (b *Builder) writeText(dir string, lang types.Language, html string) (string, error) {
	text, err := rendering.ExtractText(html)
	if err != nil {
		return "", &BuildError{Lang: lang, Step: "extract text", Cause: err}
	}
	path := filepath.Join(dir, textFile)
	if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
		return "", &BuildError{Lang: lang, Step: "write text", Cause: err}
	}
	return path, nil
}

func (b *Builder) writePDF(ctx context.Context, dir string, lang types.Language, html string) (string, error) {
	data, err := b.Printer.PrintHTML(ctx, html)
	if err != nil {
		return "", &BuildError{Lang: lang, Step: "print PDF", Cause: err}
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		return "", &BuildError{Lang: lang, Step: "print PDF", Cause: fmt.Errorf("printer returned %d bytes without a PDF header", len(data))}
	}
	path := filepath.Join(dir, pdfFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", &BuildError{Lang: lang, Step: "write PDF", Cause: err}
	}
	return path, nil
}
