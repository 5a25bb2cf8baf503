package session

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// templateFuncs provides utility functions for templates.
var templateFuncs = sprig.TxtFuncMap()

const welcomeTemplate = `Welcome to the adventure, {{ .Name | title }}!
You find yourself standing in a small clearing at the edge of a kingdom.
`

const returnTemplate = `Welcome back, {{ .Name | title }}. Your adventure continues where you left it.
`

type greetingData struct {
	Name string
}

// expandTemplate expands a template string using the provided data.
// Templates access fields via {{ .FieldName }} and may use sprig helpers.
func expandTemplate(tmplStr string, data any) (string, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}

func greeting(name string, returning bool) string {
	tmpl := welcomeTemplate
	if returning {
		tmpl = returnTemplate
	}

	out, err := expandTemplate(tmpl, greetingData{Name: name})
	if err != nil {
		// The templates are constants; a parse failure is a programming
		// error, but a session should still get a usable greeting.
		return fmt.Sprintf("Welcome, %s!\n", name)
	}
	return out
}
