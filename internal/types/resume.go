package types

import (
	"slices"

	"github.com/go-playground/validator/v10"
)

// Resume is the full content of one résumé in one language.
// Field names mirror the snake_case keys of the resume_{code}.toml files.
type Resume struct {
	PersonalInfo    PersonalInfo     `toml:"personal_info" json:"personal_info"`
	Summary         string           `toml:"summary" json:"summary"`
	TechnicalSkills TechnicalSkills  `toml:"technical_skills" json:"technical_skills"`
	WorkExperience  []WorkExperience `toml:"work_experience" json:"work_experience" validate:"dive"`
	Projects        []Project        `toml:"projects,omitempty" json:"projects,omitempty" validate:"dive"`
	Education       []Education      `toml:"education" json:"education" validate:"dive"`
	Additional      *Additional      `toml:"additional,omitempty" json:"additional,omitempty"`
}

// PersonalInfo holds the header block of the résumé.
type PersonalInfo struct {
	FullName string  `toml:"full_name" json:"full_name" validate:"required"`
	Title    string  `toml:"title" json:"title"`
	Location string  `toml:"location" json:"location"`
	Email    string  `toml:"email" json:"email" validate:"required,email"`
	Telegram *string `toml:"telegram,omitempty" json:"telegram,omitempty"`
	GitHub   *string `toml:"github,omitempty" json:"github,omitempty" validate:"omitempty,url"`
	LinkedIn *string `toml:"linkedin,omitempty" json:"linkedin,omitempty" validate:"omitempty,url"`
}

// TechnicalSkills is an ordered list of named skill categories.
type TechnicalSkills struct {
	CategorySkills []SkillCategory `toml:"category_skills" json:"category_skills" validate:"dive"`
}

// SkillCategory groups skills under a heading such as "Databases".
type SkillCategory struct {
	Name   string   `toml:"name" json:"name" validate:"required"`
	Skills []string `toml:"skills" json:"skills"`
}

// WorkExperience is one position. A nil EndDate means the position is current.
type WorkExperience struct {
	Company          string   `toml:"company" json:"company" validate:"required"`
	Position         string   `toml:"position" json:"position" validate:"required"`
	StartDate        string   `toml:"start_date" json:"start_date" validate:"required"`
	EndDate          *string  `toml:"end_date,omitempty" json:"end_date,omitempty"`
	Responsibilities []string `toml:"responsibilities" json:"responsibilities"`
}

// Current reports whether the position has no end date.
func (w WorkExperience) Current() bool {
	return w.EndDate == nil
}

// Project is a showcased project with an optional link.
type Project struct {
	Name        string   `toml:"name" json:"name" validate:"required"`
	Description string   `toml:"description" json:"description"`
	Stack       []string `toml:"stack" json:"stack"`
	Highlights  []string `toml:"highlights" json:"highlights"`
	GitHubURL   *string  `toml:"github_url,omitempty" json:"github_url,omitempty" validate:"omitempty,url"`
}

// Education is one degree. A nil EndYear means studies are ongoing.
type Education struct {
	Degree      string  `toml:"degree" json:"degree" validate:"required"`
	Institution string  `toml:"institution" json:"institution" validate:"required"`
	StartYear   uint16  `toml:"start_year" json:"start_year" validate:"required"`
	EndYear     *uint16 `toml:"end_year,omitempty" json:"end_year,omitempty"`
}

// Additional is the optional trailing block of the résumé.
type Additional struct {
	EnglishLevel    *string  `toml:"english_level,omitempty" json:"english_level,omitempty"`
	RelocationReady *bool    `toml:"relocation_ready,omitempty" json:"relocation_ready,omitempty"`
	Interests       []string `toml:"interests,omitempty" json:"interests,omitempty"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(educationYears, Education{})
	return v
}

// educationYears rejects an end year that precedes the start year.
func educationYears(sl validator.StructLevel) {
	e := sl.Current().Interface().(Education)
	if e.EndYear != nil && *e.EndYear < e.StartYear {
		sl.ReportError(e.EndYear, "EndYear", "end_year", "gtefield", "StartYear")
	}
}

// Validate checks field-level rules the data files must satisfy beyond their
// shape: email and URL formats, non-empty names and ordered education years.
func (r *Resume) Validate() error {
	return validate.Struct(r)
}

// Clone returns a deep copy that shares no slices or pointers with r.
func (r *Resume) Clone() *Resume {
	if r == nil {
		return nil
	}

	c := &Resume{
		PersonalInfo: PersonalInfo{
			FullName: r.PersonalInfo.FullName,
			Title:    r.PersonalInfo.Title,
			Location: r.PersonalInfo.Location,
			Email:    r.PersonalInfo.Email,
			Telegram: clonePtr(r.PersonalInfo.Telegram),
			GitHub:   clonePtr(r.PersonalInfo.GitHub),
			LinkedIn: clonePtr(r.PersonalInfo.LinkedIn),
		},
		Summary: r.Summary,
	}

	if r.TechnicalSkills.CategorySkills != nil {
		c.TechnicalSkills.CategorySkills = make([]SkillCategory, len(r.TechnicalSkills.CategorySkills))
		for i, cat := range r.TechnicalSkills.CategorySkills {
			c.TechnicalSkills.CategorySkills[i] = SkillCategory{Name: cat.Name, Skills: slices.Clone(cat.Skills)}
		}
	}

	if r.WorkExperience != nil {
		c.WorkExperience = make([]WorkExperience, len(r.WorkExperience))
		for i, w := range r.WorkExperience {
			c.WorkExperience[i] = WorkExperience{
				Company:          w.Company,
				Position:         w.Position,
				StartDate:        w.StartDate,
				EndDate:          clonePtr(w.EndDate),
				Responsibilities: slices.Clone(w.Responsibilities),
			}
		}
	}

	if r.Projects != nil {
		c.Projects = make([]Project, len(r.Projects))
		for i, p := range r.Projects {
			c.Projects[i] = Project{
				Name:        p.Name,
				Description: p.Description,
				Stack:       slices.Clone(p.Stack),
				Highlights:  slices.Clone(p.Highlights),
				GitHubURL:   clonePtr(p.GitHubURL),
			}
		}
	}

	if r.Education != nil {
		c.Education = make([]Education, len(r.Education))
		for i, e := range r.Education {
			c.Education[i] = Education{
				Degree:      e.Degree,
				Institution: e.Institution,
				StartYear:   e.StartYear,
				EndYear:     clonePtr(e.EndYear),
			}
		}
	}

	if r.Additional != nil {
		c.Additional = &Additional{
			EnglishLevel:    clonePtr(r.Additional.EnglishLevel),
			RelocationReady: clonePtr(r.Additional.RelocationReady),
			Interests:       slices.Clone(r.Additional.Interests),
		}
	}

	return c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
