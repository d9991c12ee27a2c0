// Package configschema provides configuration loading and validation for drscaffold.
//
// Overview:
//   - Responsibility: Parse .drscaffold.yaml, validate schema, fill defaults
//   - Key Types: Config, Diagnostics
//   - Concurrency Model: Immutable configuration after loading
//   - Error Semantics: Structured validation diagnostics with suggestions
//   - Performance Notes: Single-pass parsing
//
// Usage:
//
//	config, diags := Load(".drscaffold.yaml")
//	if diags.HasErrors() {
//	    return diags
//	}
package configschema

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"go.eggybyte.com/drscaffold/internal/errors"
	"go.eggybyte.com/drscaffold/internal/fields"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = ".drscaffold.yaml"

// DefaultMainDir is the main directory used when the file does not set one.
const DefaultMainDir = "./"

// Config represents the drscaffold configuration.
//
// Parameters:
//   - MainDir: Directory app directories are created in
//   - FieldTypes: Extra field templates keyed by lower-case type tag
//
// Concurrency:
//   - Immutable after loading
type Config struct {
	MainDir    string            `yaml:"main_dir" validate:"required"`
	FieldTypes map[string]string `yaml:"field_types" validate:"dive,keys,identifier,lowercase,endkeys,required"`
}

// Diagnostic represents a validation issue.
type Diagnostic struct {
	Severity   DiagnosticSeverity `json:"severity"`
	Message    string             `json:"message"`
	Path       string             `json:"path,omitempty"`
	Suggestion string             `json:"suggestion,omitempty"`
}

// DiagnosticSeverity represents the severity of a diagnostic.
type DiagnosticSeverity string

const (
	SeverityError   DiagnosticSeverity = "error"
	SeverityWarning DiagnosticSeverity = "warning"
	SeverityInfo    DiagnosticSeverity = "info"
)

// Diagnostics represents a collection of validation issues.
type Diagnostics struct {
	items []Diagnostic
}

// NewDiagnostics creates a new diagnostics collection.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{
		items: make([]Diagnostic, 0),
	}
}

// Add adds a diagnostic to the collection.
//
// Parameters:
//   - severity: Diagnostic severity level
//   - message: Human-readable message
//   - path: Optional configuration path
//   - suggestion: Optional fix suggestion
func (d *Diagnostics) Add(severity DiagnosticSeverity, message, path, suggestion string) {
	d.items = append(d.items, Diagnostic{
		Severity:   severity,
		Message:    message,
		Path:       path,
		Suggestion: suggestion,
	})
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(message, path, suggestion string) {
	d.Add(SeverityError, message, path, suggestion)
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(message, path, suggestion string) {
	d.Add(SeverityWarning, message, path, suggestion)
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(message, path, suggestion string) {
	d.Add(SeverityInfo, message, path, suggestion)
}

// HasErrors returns true if there are any error-level diagnostics.
func (d *Diagnostics) HasErrors() bool {
	for _, item := range d.items {
		if item.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Items returns a copy of all diagnostics.
func (d *Diagnostics) Items() []Diagnostic {
	result := make([]Diagnostic, len(d.items))
	copy(result, d.items)
	return result
}

// Error joins the error-level messages so Diagnostics can be returned as an error.
func (d *Diagnostics) Error() string {
	var msgs []string
	for _, item := range d.items {
		if item.Severity != SeverityError {
			continue
		}
		if item.Path != "" {
			msgs = append(msgs, fmt.Sprintf("%s: %s", item.Path, item.Message))
		} else {
			msgs = append(msgs, item.Message)
		}
	}
	return strings.Join(msgs, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("identifier", func(fl validator.FieldLevel) bool {
		return fields.IsIdentifier(fl.Field().String())
	})
	return v
}

// Load reads and validates the configuration at path. A missing file yields
// the defaults with an info diagnostic.
//
// Parameters:
//   - path: Path to the YAML file
//
// Returns:
//   - *Config: Loaded configuration, nil when the file cannot be read or parsed
//   - *Diagnostics: Validation issues
//
// Concurrency:
//   - Single-threaded
func Load(path string) (*Config, *Diagnostics) {
	diags := NewDiagnostics()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		config := &Config{}
		applyDefaults(config)
		diags.AddInfo("Configuration file not found, using defaults", path, "")
		return config, diags
	}
	if err != nil {
		diags.AddError(fmt.Sprintf("Failed to read configuration file: %v", err), path, "Check file permissions")
		return nil, diags
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		diags.AddError(fmt.Sprintf("Failed to parse YAML: %v", err), path, "Check YAML syntax")
		return nil, diags
	}

	applyDefaults(&config)
	validateConfig(&config, diags)

	return &config, diags
}

// applyDefaults fills in default values for missing configuration.
func applyDefaults(config *Config) {
	if strings.TrimSpace(config.MainDir) == "" {
		config.MainDir = DefaultMainDir
	}
	if config.FieldTypes == nil {
		config.FieldTypes = make(map[string]string)
	}
}

// validateConfig checks struct tags first, then that every custom field
// template renders against sample field data and does not shadow a built-in type.
func validateConfig(config *Config, diags *Diagnostics) {
	if err := validate.Struct(config); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			diags.AddError(err.Error(), "", "")
			return
		}
		for _, fe := range verrs {
			addFieldError(fe, diags)
		}
	}

	keys := make([]string, 0, len(config.FieldTypes))
	for key := range config.FieldTypes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if !fields.IsIdentifier(key) || key != strings.ToLower(key) {
			continue
		}
		if _, err := fields.NewCatalog(map[string]string{key: config.FieldTypes[key]}); err != nil {
			diags.AddError(err.Error(), "field_types."+key, "Use a new type name and a valid Go template, e.g. \"    {{.Name}} = models.CharField(max_length=20)\"")
		}
	}
}

func addFieldError(fe validator.FieldError, diags *Diagnostics) {
	switch {
	case fe.StructField() == "MainDir":
		diags.AddError("main_dir is required", "main_dir", "Set the directory apps live in, e.g. ./")
	case fe.Tag() == "identifier" || fe.Tag() == "lowercase":
		diags.AddError(fmt.Sprintf("Invalid field type name %q", fe.Value()), "field_types", "Use lower-case letters, digits and underscores")
	case fe.Tag() == "required":
		diags.AddError("Field template must not be empty", "field_types", "Provide a template for every field type")
	default:
		diags.AddError(fmt.Sprintf("%s failed %s validation", fe.Namespace(), fe.Tag()), "", "")
	}
}
