package i18n

import (
	"testing"

	"github.com/jonathan/mycv/internal/types"
	"github.com/stretchr/testify/assert"
)

var golden = map[types.Language]map[string]string{
	types.English: {
		"summary":          "Professional Summary",
		"technical_skills": "Technical Skills",
		"languages":        "Languages",
		"backend":          "Backend",
		"concurrency":      "Concurrency",
		"databases":        "Databases",
		"devops":           "DevOps & Tools",
		"testing":          "Testing",
		"work_experience":  "Work Experience",
		"projects":         "Projects",
		"education":        "Education",
		"additional":       "Additional Information",
		"present":          "Present",
		"view_project":     "View Project",
		"english_level":    "English Level",
		"relocation":       "Relocation",
		"interests":        "Interests",
		"yes":              "Yes",
		"no":               "No",
	},
	types.Russian: {
		"summary":          "О себе",
		"technical_skills": "Технические навыки",
		"languages":        "Языки программирования",
		"backend":          "Backend",
		"concurrency":      "Многопоточность",
		"databases":        "Базы данных",
		"devops":           "DevOps и инструменты",
		"testing":          "Тестирование",
		"work_experience":  "Опыт работы",
		"projects":         "Проекты",
		"education":        "Образование",
		"additional":       "Дополнительная информация",
		"present":          "По настоящее время",
		"view_project":     "Посмотреть проект",
		"english_level":    "Уровень английского",
		"relocation":       "Релокация",
		"interests":        "Интересы",
		"yes":              "Да",
		"no":               "Нет",
	},
	types.Thai: {
		"summary":          "ข้อมูลส่วนตัว",
		"technical_skills": "ทักษะทางเทคนิค",
		"languages":        "ภาษาโปรแกรม",
		"backend":          "Backend",
		"concurrency":      "Concurrency",
		"databases":        "ฐานข้อมูล",
		"devops":           "DevOps และเครื่องมือ",
		"testing":          "การทดสอบ",
		"work_experience":  "ประสบการณ์การทำงาน",
		"projects":         "โครงการ",
		"education":        "การศึกษา",
		"additional":       "ข้อมูลเพิ่มเติม",
		"present":          "ปัจจุบัน",
		"view_project":     "ดูโครงการ",
		"english_level":    "ระดับภาษาอังกฤษ",
		"relocation":       "การย้ายที่อยู่",
		"interests":        "ความสนใจ",
		"yes":              "ใช่",
		"no":               "ไม่",
	},
}

func TestNew_GoldenTables(t *testing.T) {
	for _, lang := range types.Languages() {
		t.Run(lang.Code(), func(t *testing.T) {
			labels := New(lang).Labels()

			assert.Len(t, labels, 19)
			for key, value := range labels {
				assert.NotEmpty(t, value, "label %s is empty", key)
			}
			assert.Equal(t, golden[lang], labels)
		})
	}
}

func TestNew_PresentLabel(t *testing.T) {
	assert.Equal(t, "Present", New(types.English).Present)
	assert.Equal(t, "По настоящее время", New(types.Russian).Present)
	assert.Equal(t, "ปัจจุบัน", New(types.Thai).Present)
}

func TestNew_ReturnsIndependentValues(t *testing.T) {
	a := New(types.English)
	a.Present = "changed"

	assert.Equal(t, "Present", New(types.English).Present)
}

func TestYesNo(t *testing.T) {
	tr := New(types.Russian)
	assert.Equal(t, "Да", tr.YesNo(true))
	assert.Equal(t, "Нет", tr.YesNo(false))
}

func TestCategory(t *testing.T) {
	tr := New(types.Thai)
	assert.Equal(t, "ฐานข้อมูล", tr.Category("databases"))
	assert.Equal(t, "DevOps และเครื่องมือ", tr.Category("devops"))
	assert.Equal(t, "Cloud", tr.Category("Cloud"))
	assert.Equal(t, "Databases", tr.Category("Databases"))
}
