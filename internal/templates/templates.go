// Package templates provides the template catalogs and rendering used to build
// scaffolded source fragments.
//
// Overview:
//   - Responsibility: Hold immutable artifact, setup and field templates and render them
//   - Key Types: Loader, Name, FileKind, ArtifactData, FieldData
//   - Concurrency Model: Catalogs are never mutated; rendering is safe for concurrent use
//   - Error Semantics: Unknown names return CodeNotFound, bad templates CodeInvalidArgument
//   - Performance Notes: Templates are parsed per render, catalogs are small
//
// Usage:
//
//	loader := templates.NewLoader()
//	body, err := loader.LoadAndRender(templates.ModelBody, data)
package templates

import (
	"sort"
	"strings"
	"text/template"

	"go.eggybyte.com/drscaffold/internal/errors"
	"go.eggybyte.com/drscaffold/internal/inflect"
	"go.eggybyte.com/drscaffold/internal/ui"
)

// Loader provides template lookup and rendering over the built-in catalog.
//
// Concurrency:
//   - Safe for concurrent use
type Loader struct {
	catalog map[Name]string
}

// NewLoader creates a new template loader over the built-in catalog.
//
// Returns:
//   - *Loader: Template loader instance
func NewLoader() *Loader {
	return &Loader{
		catalog: catalog,
	}
}

// LoadTemplate returns the source of a catalog template.
//
// Parameters:
//   - name: Catalog name, e.g. templates.ModelBody
//
// Returns:
//   - string: Template content
//   - error: CodeNotFound if the name is not in the catalog
func (l *Loader) LoadTemplate(name Name) (string, error) {
	content, ok := l.catalog[name]
	if !ok {
		return "", errors.Newf(errors.CodeNotFound, "template %s not found", name)
	}
	return content, nil
}

// LoadAndRender loads a catalog template and renders it with data.
func (l *Loader) LoadAndRender(name Name, data interface{}) (string, error) {
	content, err := l.LoadTemplate(name)
	if err != nil {
		return "", err
	}

	rendered, err := Render(string(name), content, data)
	if err != nil {
		return "", err
	}
	return rendered, nil
}

// ListTemplates lists all catalog template names in sorted order.
func (l *Loader) ListTemplates() []Name {
	names := make([]Name, 0, len(l.catalog))
	for name := range l.catalog {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// ValidateAllTemplates parses every catalog template.
//
// Returns:
//   - error: First parse failure if any
//
// Performance:
//   - Sequential template validation
func (l *Loader) ValidateAllTemplates() error {
	for _, name := range l.ListTemplates() {
		if err := Validate(string(name), l.catalog[name]); err != nil {
			return err
		}
		ui.Debug("Template validated: %s", name)
	}
	return nil
}

// Render parses and executes a template with the scaffolding function map.
//
// Parameters:
//   - name: Template name used in error messages
//   - content: Template source
//   - data: Template data
//
// Returns:
//   - string: Rendered content
//   - error: CodeInvalidArgument on parse or execution failure
func Render(name, content string, data interface{}) (string, error) {
	tmpl, err := parse(name, content)
	if err != nil {
		return "", err
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", errors.Wrapf(errors.CodeInvalidArgument, "templates.Render", err, "failed to render template %s", name)
	}
	return result.String(), nil
}

// Validate reports whether a template source parses.
func Validate(name, content string) error {
	_, err := parse(name, content)
	return err
}

func parse(name, content string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"ToUpper":   strings.ToUpper,
		"ToLower":   strings.ToLower,
		"Pluralize": inflect.Pluralize,
		"Camelize":  inflect.Camelize,
	}

	tmpl, err := template.New(name).Funcs(funcMap).Option("missingkey=error").Parse(content)
	if err != nil {
		return nil, errors.Wrapf(errors.CodeInvalidArgument, "templates.Parse", err, "failed to parse template %s", name)
	}
	return tmpl, nil
}
