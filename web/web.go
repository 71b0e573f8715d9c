// Package web holds the page templates, static assets and the small view
// models the templates render.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Templates parses every page and fragment template with the site's funcs.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.html")
}

// Static returns the static asset tree rooted at "static".
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

func FuncMap() template.FuncMap {
	return template.FuncMap{
		"markdown": Markdown,
		"join":     strings.Join,
		"inc":      func(i int) int { return i + 1 },
		"percent":  func(f float64) string { return fmt.Sprintf("%.1f%%", f*100) },
	}
}

// Markdown renders trusted profile text to HTML. Raw HTML in the source is
// dropped by goldmark's default renderer.
func Markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}
