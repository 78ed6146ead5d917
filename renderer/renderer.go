// Package renderer renders the book as markdown reports for the terminal,
// and the shift report as a Word-compatible HTML document.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/tillbook"
)

//go:embed templates/*.md
var templates embed.FS

// renderTemplate renders the main template file with data. funcs are
// available to the template.
func renderTemplate(templateName, mainFile string, funcs template.FuncMap, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}
	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

// moneyFuncs returns the template functions formatting amounts in currency.
func moneyFuncs(currency string) template.FuncMap {
	return template.FuncMap{
		"money": func(m tillbook.Money) string { return m.Format(currency) },
	}
}
