package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/TeongTat/travelagentic/internal/domain/models"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed templates/*.html
var templateFS embed.FS

type pane struct {
	Title  string
	Status string
	HTML   template.HTML
}

type formPage struct {
	Form briefRequest
}

type resultPage struct {
	Form    briefRequest
	RunID   string
	Panes   []pane
	Weather *models.WeatherSummary
}

// renderer turns stage markdown into HTML panes. Raw HTML inside the markdown
// is dropped by goldmark.
type renderer struct {
	pages    *template.Template
	markdown goldmark.Markdown
}

func newRenderer() (*renderer, error) {
	pages, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &renderer{
		pages:    pages,
		markdown: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}, nil
}

func (r *renderer) toHTML(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func (r *renderer) panes(brief models.Brief) ([]pane, error) {
	titles := map[models.Stage]string{
		models.StageIntroduction: "Introduction",
		models.StageFlights:      "Flights",
		models.StageSummary:      "Summary",
	}

	out := make([]pane, 0, 3)
	for _, res := range brief.Panes() {
		body, err := r.toHTML(res.Display())
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", res.Stage, err)
		}
		out = append(out, pane{Title: titles[res.Stage], Status: res.Status.String(), HTML: body})
	}
	return out, nil
}

// execute renders into a buffer first so a template error never leaves a half page.
func (r *renderer) execute(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := r.pages.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
