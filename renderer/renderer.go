// Package renderer turns deckbox report structs into markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	deckbox "github.com/cardsmith/deckboxdiff"
)

//go:embed *.md
var templates embed.FS

// DiffMarkdown renders a diff report to a markdown string.
func DiffMarkdown(r *deckbox.DiffReport) string {
	partials := map[string]string{
		"diff_entries": "diff_entries.md",
		"diff_pricing": "diff_pricing.md",
	}
	return renderTemplate("diff", "diff.md", partials, r)
}

// ValueMarkdown renders a collection value summary to a markdown string.
func ValueMarkdown(r *deckbox.ValueReport) string {
	return renderTemplate("value", "value.md", nil, r)
}

// ListingMarkdown renders a collection listing to a markdown string.
func ListingMarkdown(r *deckbox.ListingReport) string {
	return renderTemplate("listing", "listing.md", nil, r)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
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

var funcs = template.FuncMap{
	// signed renders a count delta with an explicit sign.
	"signed": func(n int) string { return fmt.Sprintf("%+d", n) },
}
