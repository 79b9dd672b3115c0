// Package renderer builds the markdown reports printed by the skintrack CLI.
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

// ListRow is one champion line of the roster report.
type ListRow struct {
	Name  string
	Owned int
	Total int
}

// List describes a filtered roster view.
type List struct {
	Query string
	Mode  string
	Rows  []ListRow
}

// RenderList renders the filtered roster to a markdown string.
func RenderList(l *List) string {
	return renderTemplate("list", "templates/list.md", l)
}

// SkinRow is one skin line of a champion report.
type SkinRow struct {
	Name  string
	Owned bool
}

// ChampionView describes a single champion and its skins.
type ChampionView struct {
	Name  string
	Skins []SkinRow
}

// RenderChampion renders one champion's skin checklist to markdown.
func RenderChampion(v *ChampionView) string {
	return renderTemplate("champion", "templates/champion.md", v)
}

// Summary describes the aggregate ownership of the whole collection.
type Summary struct {
	OwnedChampions     int
	Champions          int
	OwnedSkins         int
	Skins              int
	ChampionCompletion string
	SkinCompletion     string
}

// RenderSummary renders the aggregate counts to markdown.
func RenderSummary(s *Summary) string {
	return renderTemplate("summary", "templates/summary.md", s)
}

// renderTemplate is a small utility to render one embedded template.
// Template failures render as an error string rather than failing the
// command: a broken report is still more useful than none.
func renderTemplate(name, file string, data any) string {
	content, err := fs.ReadFile(templates, file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}
	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", name, err)
	}
	return b.String()
}
