// Package renderer turns core hour-tracking types into markdown reports.
// Layout lives in embedded templates; the Go side only prepares view types
// with pre-formatted fields.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// RenderWeekList renders the logged weeks as a markdown table.
func RenderWeekList(wl *WeekList) string {
	partials := map[string]string{
		"week_table": "week_table.md",
	}
	return renderTemplate("weekList", "week_list.md", partials, wl)
}

// RenderSummary renders licensure progress as a markdown report.
func RenderSummary(s *Summary) string {
	partials := map[string]string{
		"summary_goals": "summary_goals.md",
	}
	return renderTemplate("summary", "summary.md", partials, s)
}

// RenderReport renders the full export document: progress summary followed by
// the complete week table.
func RenderReport(r *Report) string {
	partials := map[string]string{
		"summary_goals": "summary_goals.md",
		"week_table":    "week_table.md",
	}
	return renderTemplate("report", "report.md", partials, r)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, readErr := fs.ReadFile(templates, "templates/"+file)
		if readErr != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
