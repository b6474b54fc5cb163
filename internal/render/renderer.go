package render

import (
	"bytes"
	"embed"
	"html/template"
	"strings"
)

//go:embed templates/*.html
var templateFiles embed.FS

// DefaultTemplate is the layout used when no template is requested or the
// requested one is unknown.
const DefaultTemplate = "professional"

var cvTemplates = template.Must(
	template.New("cv").Funcs(template.FuncMap{
		"formatPeriod": FormatPeriod,
		"join":         strings.Join,
	}).ParseFS(templateFiles, "templates/*.html"),
)

// Render produces the printable HTML document for the requested template id.
// An unknown id silently falls back to the default layout; the caller is
// never told the fallback occurred.
func Render(doc Document, templateID string) (string, error) {
	name := templateName(templateID)
	if cvTemplates.Lookup(name) == nil {
		name = templateName(DefaultTemplate)
	}

	var buf bytes.Buffer
	if err := cvTemplates.ExecuteTemplate(&buf, name, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Known reports whether a template id is registered.
func Known(templateID string) bool {
	return cvTemplates.Lookup(templateName(templateID)) != nil
}

func templateName(templateID string) string {
	return "cv_" + strings.TrimSpace(templateID) + ".html"
}
