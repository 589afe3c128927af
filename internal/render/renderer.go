package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"resume-builder/pkg/formatters"
)

//go:embed templates/template.html templates/style.css
var embedded embed.FS

const (
	templateFile = "template.html"
	styleFile    = "style.css"
)

var funcs = template.FuncMap{
	"spans": formatters.SpansHTML,
	// hrefs are built by Build with a fixed scheme prefix, so tel: links
	// are allowed through the URL filter
	"href": func(s string) template.URL { return template.URL(s) },
}

// Renderer executes the resume template and inlines its stylesheet so the
// output is self-contained.
type Renderer struct {
	tpl *template.Template
	css string
}

// NewRenderer loads template.html and style.css from tplDir, or the built-in
// copies when tplDir is empty.
func NewRenderer(tplDir string) (*Renderer, error) {
	var tplSrc, cssSrc []byte
	var err error
	if tplDir == "" {
		tplSrc, err = embedded.ReadFile("templates/" + templateFile)
		if err != nil {
			return nil, err
		}
		cssSrc, _ = embedded.ReadFile("templates/" + styleFile)
	} else {
		tplSrc, err = os.ReadFile(filepath.Join(tplDir, templateFile))
		if err != nil {
			return nil, fmt.Errorf("read template: %w", err)
		}
		// stylesheet is optional in an override directory
		cssSrc, _ = os.ReadFile(filepath.Join(tplDir, styleFile))
	}

	tpl, err := template.New(templateFile).Funcs(funcs).Parse(string(tplSrc))
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	return &Renderer{tpl: tpl, css: string(cssSrc)}, nil
}

// HTML renders doc as a complete HTML page.
func (r *Renderer) HTML(doc Document) (string, error) {
	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}
	html := buf.String()
	if r.css == "" {
		return html, nil
	}
	cssBlock := "<style>" + r.css + "</style>"
	if i := strings.Index(strings.ToLower(html), "<head>"); i >= 0 {
		i += len("<head>")
		return html[:i] + cssBlock + html[i:], nil
	}
	return cssBlock + html, nil
}
