// Package testutil provides shared fixtures for mycv tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/jonathan/mycv/internal/types"
)

// MinimalTOML returns the smallest valid résumé document for a language code.
// Its only work-experience entry has no end_date.
func MinimalTOML(code string) string {
	return fmt.Sprintf(`summary = "Backend developer (%[1]s)."

[personal_info]
full_name = "Aleksey Dev"
title = "Backend Developer"
location = "Bangkok, Thailand"
email = "aleksey@example.com"

[technical_skills]
[[technical_skills.category_skills]]
name = "Languages"
skills = ["Go", "SQL"]

[[work_experience]]
company = "Tech Company %[1]s"
position = "Backend Developer"
start_date = "2024-01"
responsibilities = ["Developed gRPC services"]

[[education]]
degree = "Bachelor of Computer Science"
institution = "University Name"
start_year = 2018
end_year = 2022
`, code)
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file %s: %v", path, err)
	}
}

// WriteAssets writes a minimal resume_{code}.toml for every supported language
// except the ones listed in skip, and returns the assets directory.
func WriteAssets(t *testing.T, skip ...types.Language) string {
	t.Helper()

	dir := t.TempDir()
	for _, lang := range types.Languages() {
		if slices.Contains(skip, lang) {
			continue
		}
		WriteFile(t, AssetPath(dir, lang), MinimalTOML(lang.Code()))
	}
	return dir
}

// AssetPath returns the data file path for lang inside dir.
func AssetPath(dir string, lang types.Language) string {
	return filepath.Join(dir, fmt.Sprintf("resume_%s.toml", lang.Code()))
}

// SampleResume returns a representative résumé with every optional field set.
func SampleResume() *types.Resume {
	telegram := "@alekseydev"
	github := "https://github.com/alekseydev"
	repoURL := "https://github.com/alekseydev/accounting-category"
	endYear := uint16(2022)
	level := "B2"
	relocation := true

	return &types.Resume{
		PersonalInfo: types.PersonalInfo{
			FullName: "Aleksey Dev",
			Title:    "Backend Developer",
			Location: "Bangkok, Thailand",
			Email:    "aleksey@example.com",
			Telegram: &telegram,
			GitHub:   &github,
		},
		Summary: "Backend developer with experience in **gRPC** services.",
		TechnicalSkills: types.TechnicalSkills{
			CategorySkills: []types.SkillCategory{
				{Name: "Languages", Skills: []string{"Go", "SQL"}},
				{Name: "Databases", Skills: []string{"PostgreSQL"}},
			},
		},
		WorkExperience: []types.WorkExperience{
			{
				Company:          "Tech Company",
				Position:         "Backend Developer",
				StartDate:        "2024-01",
				Responsibilities: []string{"Developed gRPC services", "Optimized Docker images (2GB -> 150MB)"},
			},
		},
		Projects: []types.Project{
			{
				Name:        "Accounting Category Service",
				Description: "gRPC CRUD service for category management",
				Stack:       []string{"Go", "PostgreSQL", "Docker"},
				Highlights:  []string{"Multi-stage Docker build"},
				GitHubURL:   &repoURL,
			},
		},
		Education: []types.Education{
			{
				Degree:      "Bachelor of Computer Science",
				Institution: "University Name",
				StartYear:   2018,
				EndYear:     &endYear,
			},
		},
		Additional: &types.Additional{
			EnglishLevel:    &level,
			RelocationReady: &relocation,
			Interests:       []string{"High-load systems", "Microservices"},
		},
	}
}
