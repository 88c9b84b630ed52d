package repository

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/mycv/internal/types"
	"golang.org/x/sync/errgroup"
)

// ResumeRepository is the read side consumed by the server and the site builder.
type ResumeRepository interface {
	// Get returns a copy of the résumé cached at construction.
	Get(lang types.Language) (*types.Resume, bool)
	// Load re-reads and re-parses the résumé from disk.
	Load(lang types.Language) (*types.Resume, error)
}

// TomlRepository serves résumés stored as {basePath}/resume_{code}.toml.
// The cache is filled once by New and never written afterwards, so concurrent
// readers need no synchronization.
type TomlRepository struct {
	basePath string
	resumes  map[types.Language]*types.Resume
}

var _ ResumeRepository = (*TomlRepository)(nil)

// New loads every supported language from basePath. If any language fails the
// whole construction fails with a *LoadError and no repository is returned.
// When several files are broken the error names the first one in
// types.Languages() order.
func New(basePath string) (*TomlRepository, error) {
	repo := &TomlRepository{basePath: basePath}

	langs := types.Languages()
	loaded := make([]*types.Resume, len(langs))
	errs := make([]error, len(langs))

	var g errgroup.Group
	for i, lang := range langs {
		g.Go(func() error {
			loaded[i], errs[i] = repo.Load(lang)
			return errs[i]
		})
	}
	// Every load runs to completion; errs is inspected in language order below.
	_ = g.Wait()

	for i, lang := range langs {
		if errs[i] != nil {
			return nil, &LoadError{Language: lang, Cause: errs[i]}
		}
	}

	repo.resumes = make(map[types.Language]*types.Resume, len(langs))
	for i, lang := range langs {
		repo.resumes[lang] = loaded[i]
	}

	return repo, nil
}

// FilePath returns {basePath}/resume_{code}.toml.
func FilePath(basePath string, lang types.Language) string {
	return filepath.Join(basePath, fmt.Sprintf("resume_%s.toml", lang.Code()))
}

// ReadFile reads and parses the data file for lang without caching it.
func ReadFile(basePath string, lang types.Language) (*types.Resume, error) {
	path := FilePath(basePath, lang)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileReadError{Language: lang, Path: path, Cause: err}
	}

	resume, err := Parse(data)
	if err != nil {
		return nil, &ParseError{Language: lang, Path: path, Cause: err}
	}

	return resume, nil
}

// Get returns a deep copy of the cached résumé for lang.
func (r *TomlRepository) Get(lang types.Language) (*types.Resume, bool) {
	resume, ok := r.resumes[lang]
	if !ok {
		return nil, false
	}
	return resume.Clone(), true
}

// Load reads the data file for lang from disk, bypassing the cache.
func (r *TomlRepository) Load(lang types.Language) (*types.Resume, error) {
	return ReadFile(r.basePath, lang)
}
