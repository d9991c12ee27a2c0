// Package fields parses "name:type" field specifications and renders them into
// model field declarations.
//
// Overview:
//   - Responsibility: Parse raw field tokens, validate type tags, render declarations
//   - Key Types: FieldSpec, Catalog, UnknownFieldTypeError, MalformedFieldError
//   - Concurrency Model: A Catalog is immutable after construction
//   - Error Semantics: Unknown type tags and malformed tokens are fatal
//   - Performance Notes: One template execution per field
//
// Usage:
//
//	catalog, err := fields.NewCatalog(nil)
//	block, err := catalog.FieldsString([]string{"title:charfield", "body:textfield"})
package fields

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"go.eggybyte.com/drscaffold/internal/errors"
	"go.eggybyte.com/drscaffold/internal/inflect"
	"go.eggybyte.com/drscaffold/internal/templates"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// targetPattern accepts "Model" and "app_label.Model".
var targetPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// IsIdentifier reports whether s is a valid Python identifier in ASCII form.
func IsIdentifier(s string) bool {
	return identifierPattern.MatchString(s)
}

// FieldSpec is a parsed field token.
type FieldSpec struct {
	Name   string // attribute name
	Type   string // lower-case type tag
	Target string // related model for relational types
}

// UnknownFieldTypeError is returned when a type tag has no template.
type UnknownFieldTypeError struct {
	Field string
	Type  string
}

// Error implements the error interface.
func (e *UnknownFieldTypeError) Error() string {
	return fmt.Sprintf("unknown field type %q for field %q", e.Type, e.Field)
}

// ErrorCode classifies the error.
func (e *UnknownFieldTypeError) ErrorCode() errors.Code {
	return errors.CodeUnknownFieldType
}

// MalformedFieldError is returned for tokens that are not "name:type".
type MalformedFieldError struct {
	Token  string
	Reason string
}

// Error implements the error interface.
func (e *MalformedFieldError) Error() string {
	return fmt.Sprintf("malformed field %q: %s (expected name:type)", e.Token, e.Reason)
}

// ErrorCode classifies the error.
func (e *MalformedFieldError) ErrorCode() errors.Code {
	return errors.CodeInvalidArgument
}

// Parse splits a raw token on its first colon into a name and type tag. For
// relational types a further ":Target" segment names the related model; it
// defaults to the camelized field name.
func Parse(raw string) (FieldSpec, error) {
	name, rest, found := strings.Cut(strings.TrimSpace(raw), ":")
	if !found {
		return FieldSpec{}, &MalformedFieldError{Token: raw, Reason: "missing ':'"}
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return FieldSpec{}, &MalformedFieldError{Token: raw, Reason: "empty field name"}
	}
	if !IsIdentifier(name) {
		return FieldSpec{}, &MalformedFieldError{Token: raw, Reason: "field name is not an identifier"}
	}

	typeTag, target, _ := strings.Cut(rest, ":")
	typeTag = strings.ToLower(strings.TrimSpace(typeTag))
	if typeTag == "" {
		return FieldSpec{}, &MalformedFieldError{Token: raw, Reason: "empty field type"}
	}

	spec := FieldSpec{Name: name, Type: typeTag, Target: strings.TrimSpace(target)}
	if spec.Target != "" && !templates.IsRelational(typeTag) {
		return FieldSpec{}, &MalformedFieldError{Token: raw, Reason: "related model given for a non-relational type"}
	}
	if spec.Target != "" && !targetPattern.MatchString(spec.Target) {
		return FieldSpec{}, &MalformedFieldError{Token: raw, Reason: "invalid related model name"}
	}
	if spec.Target == "" && templates.IsRelational(typeTag) {
		spec.Target = inflect.Camelize(name)
	}
	return spec, nil
}

// ParseAll parses tokens in order, stopping at the first error.
func ParseAll(raw []string) ([]FieldSpec, error) {
	specs := make([]FieldSpec, 0, len(raw))
	for _, token := range raw {
		spec, err := Parse(token)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// Names returns the field names in order.
func Names(specs []FieldSpec) []string {
	names := make([]string, len(specs))
	for i, spec := range specs {
		names[i] = spec.Name
	}
	return names
}

// Catalog maps type tags to field templates.
type Catalog struct {
	templates map[string]string
}

// NewCatalog returns the built-in field templates extended with extra ones.
// Extra keys are lower-cased and must be identifiers whose templates render
// against sample field data; they cannot override a built-in type.
func NewCatalog(extra map[string]string) (*Catalog, error) {
	c := &Catalog{templates: templates.FieldTemplates()}

	for tag, content := range extra {
		key := strings.ToLower(strings.TrimSpace(tag))
		if !IsIdentifier(key) {
			return nil, errors.Newf(errors.CodeInvalidArgument, "field type %q is not an identifier", tag)
		}
		if _, builtin := c.templates[key]; builtin {
			return nil, errors.Newf(errors.CodeInvalidArgument, "field type %q is built in and cannot be redefined", key)
		}
		sample := templates.FieldData{Name: key, Target: inflect.Camelize(key)}
		if _, err := templates.Render(key, content, sample); err != nil {
			return nil, err
		}
		if !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		c.templates[key] = content
	}
	return c, nil
}

// Types returns the supported type tags in sorted order.
func (c *Catalog) Types() []string {
	tags := make([]string, 0, len(c.templates))
	for tag := range c.templates {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Supports reports whether a type tag has a template.
func (c *Catalog) Supports(typeTag string) bool {
	_, ok := c.templates[strings.ToLower(typeTag)]
	return ok
}

// Check returns an UnknownFieldTypeError if any spec has no template.
func (c *Catalog) Check(specs []FieldSpec) error {
	for _, spec := range specs {
		if !c.Supports(spec.Type) {
			return &UnknownFieldTypeError{Field: spec.Name, Type: spec.Type}
		}
	}
	return nil
}

// Render renders one field declaration.
func (c *Catalog) Render(spec FieldSpec) (string, error) {
	content, ok := c.templates[spec.Type]
	if !ok {
		return "", &UnknownFieldTypeError{Field: spec.Name, Type: spec.Type}
	}
	return templates.Render(spec.Type, content, templates.FieldData{Name: spec.Name, Target: spec.Target})
}

// RenderAll renders declarations in input order, each on its own line. All
// specs are checked before anything is rendered.
func (c *Catalog) RenderAll(specs []FieldSpec) (string, error) {
	if err := c.Check(specs); err != nil {
		return "", err
	}

	var b strings.Builder
	for _, spec := range specs {
		line, err := c.Render(spec)
		if err != nil {
			return "", err
		}
		b.WriteString(line)
	}
	return b.String(), nil
}

// FieldsString parses raw tokens and renders their declarations.
func (c *Catalog) FieldsString(raw []string) (string, error) {
	specs, err := ParseAll(raw)
	if err != nil {
		return "", err
	}
	return c.RenderAll(specs)
}
