// Package i18n provides the localized UI labels used by the résumé template.
package i18n

import "github.com/jonathan/mycv/internal/types"

// Translation holds every fixed label the résumé template prints.
// Values are constructed per render and never mutated.
type Translation struct {
	Summary         string
	TechnicalSkills string
	Languages       string
	Backend         string
	Concurrency     string
	Databases       string
	DevOps          string
	Testing         string
	WorkExperience  string
	Projects        string
	Education       string
	Additional      string
	Present         string
	ViewProject     string
	EnglishLevel    string
	Relocation      string
	Interests       string
	Yes             string
	No              string
}

// New returns the complete label table for lang.
func New(lang types.Language) Translation {
	switch lang {
	case types.Russian:
		return russian
	case types.Thai:
		return thai
	default:
		return english
	}
}

// YesNo returns the Yes or No label for v.
func (t Translation) YesNo(v bool) string {
	if v {
		return t.Yes
	}
	return t.No
}

// Category translates a skill category name when it is one of the well-known
// category keys ("languages", "backend", "concurrency", "databases", "devops",
// "testing"). Any other name is returned unchanged.
func (t Translation) Category(name string) string {
	switch name {
	case "languages":
		return t.Languages
	case "backend":
		return t.Backend
	case "concurrency":
		return t.Concurrency
	case "databases":
		return t.Databases
	case "devops":
		return t.DevOps
	case "testing":
		return t.Testing
	default:
		return name
	}
}

// Labels returns the table keyed by snake_case label name.
func (t Translation) Labels() map[string]string {
	return map[string]string{
		"summary":          t.Summary,
		"technical_skills": t.TechnicalSkills,
		"languages":        t.Languages,
		"backend":          t.Backend,
		"concurrency":      t.Concurrency,
		"databases":        t.Databases,
		"devops":           t.DevOps,
		"testing":          t.Testing,
		"work_experience":  t.WorkExperience,
		"projects":         t.Projects,
		"education":        t.Education,
		"additional":       t.Additional,
		"present":          t.Present,
		"view_project":     t.ViewProject,
		"english_level":    t.EnglishLevel,
		"relocation":       t.Relocation,
		"interests":        t.Interests,
		"yes":              t.Yes,
		"no":               t.No,
	}
}

var english = Translation{
	Summary:         "Professional Summary",
	TechnicalSkills: "Technical Skills",
	Languages:       "Languages",
	Backend:         "Backend",
	Concurrency:     "Concurrency",
	Databases:       "Databases",
	DevOps:          "DevOps & Tools",
	Testing:         "Testing",
	WorkExperience:  "Work Experience",
	Projects:        "Projects",
	Education:       "Education",
	Additional:      "Additional Information",
	Present:         "Present",
	ViewProject:     "View Project",
	EnglishLevel:    "English Level",
	Relocation:      "Relocation",
	Interests:       "Interests",
	Yes:             "Yes",
	No:              "No",
}

var russian = Translation{
	Summary:         "О себе",
	TechnicalSkills: "Технические навыки",
	Languages:       "Языки программирования",
	Backend:         "Backend",
	Concurrency:     "Многопоточность",
	Databases:       "Базы данных",
	DevOps:          "DevOps и инструменты",
	Testing:         "Тестирование",
	WorkExperience:  "Опыт работы",
	Projects:        "Проекты",
	Education:       "Образование",
	Additional:      "Дополнительная информация",
	Present:         "По настоящее время",
	ViewProject:     "Посмотреть проект",
	EnglishLevel:    "Уровень английского",
	Relocation:      "Релокация",
	Interests:       "Интересы",
	Yes:             "Да",
	No:              "Нет",
}

var thai = Translation{
	Summary:         "ข้อมูลส่วนตัว",
	TechnicalSkills: "ทักษะทางเทคนิค",
	Languages:       "ภาษาโปรแกรม",
	Backend:         "Backend",
	Concurrency:     "Concurrency",
	Databases:       "ฐานข้อมูล",
	DevOps:          "DevOps และเครื่องมือ",
	Testing:         "การทดสอบ",
	WorkExperience:  "ประสบการณ์การทำงาน",
	Projects:        "โครงการ",
	Education:       "การศึกษา",
	Additional:      "ข้อมูลเพิ่มเติม",
	Present:         "ปัจจุบัน",
	ViewProject:     "ดูโครงการ",
	EnglishLevel:    "ระดับภาษาอังกฤษ",
	Relocation:      "การย้ายที่อยู่",
	Interests:       "ความสนใจ",
	Yes:             "ใช่",
	No:              "ไม่",
}
