package repository

import (
	"fmt"

	"github.com/jonathan/mycv/internal/schemas"
	"github.com/jonathan/mycv/internal/types"
	"github.com/pelletier/go-toml/v2"
)

// Parse decodes one résumé document. The raw document is checked against the
// résumé schema first so that missing sections are reported by key name, then
// decoded into types.Resume and validated field by field.
func Parse(data []byte) (*types.Resume, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid TOML: %w", err)
	}

	if err := schemas.ValidateDocument(doc); err != nil {
		return nil, err
	}

	var resume types.Resume
	if err := toml.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to decode resume: %w", err)
	}

	if err := resume.Validate(); err != nil {
		return nil, fmt.Errorf("invalid resume: %w", err)
	}

	dropEmptyOptionalLists(&resume)
	return &resume, nil
}

// dropEmptyOptionalLists treats "projects = []" and "interests = []" the same
// as leaving the key out; both render no section or line.
func dropEmptyOptionalLists(r *types.Resume) {
	if len(r.Projects) == 0 {
		r.Projects = nil
	}
	if r.Additional != nil && len(r.Additional.Interests) == 0 {
		r.Additional.Interests = nil
	}
}

// Marshal encodes a résumé in the data file format.
func Marshal(resume *types.Resume) ([]byte, error) {
	data, err := toml.Marshal(resume)
	if err != nil {
		return nil, fmt.Errorf("failed to encode resume: %w", err)
	}
	return data, nil
}
