package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/jonathan/mycv/internal/i18n"
	"github.com/jonathan/mycv/internal/types"
)

//go:embed templates/resume.html
var templateFS embed.FS

const defaultTemplate = "templates/resume.html"

// Renderer turns a résumé and its label table into a complete HTML document.
type Renderer interface {
	Render(resume *types.Resume, t i18n.Translation, lang string) (string, error)
}

// TemplateData represents the data structure passed to the HTML template
type TemplateData struct {
	Resume    *types.Resume
	T         i18n.Translation
	Lang      string
	Languages []LanguageLink
}

// LanguageLink is one entry of the language switcher.
type LanguageLink struct {
	Code   string
	Href   string
	Active bool
}

// HTMLRenderer executes a parsed html/template. It is safe for concurrent use.
type HTMLRenderer struct {
	tmpl     *template.Template
	markdown *Markdown
	baseURL  string
}

var _ Renderer = (*HTMLRenderer)(nil)

// Option configures an HTMLRenderer.
type Option func(*HTMLRenderer)

// WithBaseURL sets the prefix of language switcher links. The default "/"
// produces "/ru", "/en" and "/th", matching the live server routes.
func WithBaseURL(baseURL string) Option {
	return func(r *HTMLRenderer) {
		if baseURL == "" {
			baseURL = "/"
		}
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		r.baseURL = baseURL
	}
}

// NewHTMLRenderer returns a renderer for the built-in résumé template.
func NewHTMLRenderer(opts ...Option) (*HTMLRenderer, error) {
	content, err := templateFS.ReadFile(defaultTemplate)
	if err != nil {
		return nil, &TemplateError{Message: "embedded template missing", Cause: err}
	}
	return newRenderer(string(content), opts)
}

// NewHTMLRendererFromFile returns a renderer for a template file on disk.
func NewHTMLRendererFromFile(templatePath string, opts ...Option) (*HTMLRenderer, error) {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", templatePath),
				Cause:   err,
			}
		}
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", templatePath),
			Cause:   err,
		}
	}
	return newRenderer(string(content), opts)
}

func newRenderer(content string, opts []Option) (*HTMLRenderer, error) {
	r := &HTMLRenderer{
		markdown: NewMarkdown(),
		baseURL:  "/",
	}
	for _, opt := range opts {
		opt(r)
	}

	tmpl, err := template.New("resume").Funcs(template.FuncMap{
		"markdown": r.markdown.ToHTML,
		"join":     strings.Join,
	}).Parse(content)
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}
	r.tmpl = tmpl

	return r, nil
}

// Render executes the template. Execution failures are returned as *RenderError.
func (r *HTMLRenderer) Render(resume *types.Resume, t i18n.Translation, lang string) (string, error) {
	if resume == nil {
		return "", &RenderError{Lang: lang, Message: "resume is nil"}
	}

	data := TemplateData{
		Resume:    resume,
		T:         t,
		Lang:      lang,
		Languages: r.languageLinks(lang),
	}

	var result strings.Builder
	if err := r.tmpl.Execute(&result, data); err != nil {
		return "", &RenderError{
			Lang:    lang,
			Message: "failed to execute template",
			Cause:   err,
		}
	}

	return result.String(), nil
}

func (r *HTMLRenderer) languageLinks(active string) []LanguageLink {
	links := make([]LanguageLink, 0, len(types.Languages()))
	for _, l := range types.Languages() {
		links = append(links, LanguageLink{
			Code:   l.Code(),
			Href:   r.baseURL + l.Code(),
			Active: l.Code() == active,
		})
	}
	return links
}
