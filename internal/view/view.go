// Package view holds the server-rendered templates of the find-tutors page.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed templates/*.html
var files embed.FS

// Funcs are the helpers available to every template.
var Funcs = template.FuncMap{
	"join": strings.Join,
	"rating": func(r float64) string {
		return fmt.Sprintf("%.1f", r)
	},
	"years": func(y float64) string {
		if y == 1 {
			return "1 year"
		}
		return fmt.Sprintf("%g years", y)
	},
}

// Templates parses the embedded templates. The result is meant for
// gin.Engine.SetHTMLTemplate.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs).ParseFS(files, "templates/*.html")
}
