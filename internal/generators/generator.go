package generators

import (
	"path/filepath"
	"strings"

	"go.eggybyte.com/drscaffold/internal/fields"
	"go.eggybyte.com/drscaffold/internal/inflect"
	"go.eggybyte.com/drscaffold/internal/projectfs"
	"go.eggybyte.com/drscaffold/internal/templates"
)

// DefaultMainDir is the directory apps are created in when none is configured.
const DefaultMainDir = "./"

// Generator scaffolds one resource into one app directory.
//
// Parameters:
//   - spec: Resource being generated
//   - mainDir: Directory containing the app directory
//   - appDir: App directory, relative to mainDir
//   - fields: Parsed field specs
//   - catalog: Field templates
//   - loader: Artifact templates
//   - fs: Patch API
//
// Concurrency:
//   - Not safe for concurrent use
type Generator struct {
	spec      ResourceSpec
	mainDir   string
	appDir    string
	fields    []fields.FieldSpec
	catalog   *fields.Catalog
	loader    *templates.Loader
	fs        Patcher
	skipAdmin bool
	skipURLs  bool
}

// Option configures a Generator.
type Option func(*options)

type options struct {
	mainDir    string
	fieldTypes map[string]string
	patcher    Patcher
	verbose    bool
	skipAdmin  bool
	skipURLs   bool
}

// WithMainDir sets the directory the app directory lives in.
func WithMainDir(dir string) Option {
	return func(o *options) {
		o.mainDir = dir
	}
}

// WithFieldTypes adds user-defined field templates keyed by type tag.
func WithFieldTypes(fieldTypes map[string]string) Option {
	return func(o *options) {
		o.fieldTypes = fieldTypes
	}
}

// WithPatcher replaces the patch API. The patcher must resolve relative
// paths against the main directory.
func WithPatcher(p Patcher) Option {
	return func(o *options) {
		o.patcher = p
	}
}

// WithVerbose enables file-level debug output.
func WithVerbose(enabled bool) Option {
	return func(o *options) {
		o.verbose = enabled
	}
}

// WithSkipAdmin leaves admin.py out of the pipeline.
func WithSkipAdmin(skip bool) Option {
	return func(o *options) {
		o.skipAdmin = skip
	}
}

// WithSkipURLs leaves urls.py out of the pipeline.
func WithSkipURLs(skip bool) Option {
	return func(o *options) {
		o.skipURLs = skip
	}
}

// NewGenerator validates spec, parses its fields and renders every field
// declaration once, so no file is touched for a spec that cannot be rendered.
//
// Parameters:
//   - spec: Resource to scaffold
//   - opts: Generator options
//
// Returns:
//   - *Generator: Generator instance
//   - error: Validation, malformed field, unknown field type or field render error
func NewGenerator(spec ResourceSpec, opts ...Option) (*Generator, error) {
	o := options{mainDir: DefaultMainDir}
	for _, opt := range opts {
		opt(&o)
	}
	if o.mainDir == "" {
		o.mainDir = DefaultMainDir
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}

	specs, err := fields.ParseAll(spec.Fields)
	if err != nil {
		return nil, err
	}

	catalog, err := fields.NewCatalog(o.fieldTypes)
	if err != nil {
		return nil, err
	}
	if _, err := catalog.RenderAll(specs); err != nil {
		return nil, err
	}

	if o.patcher == nil {
		pfs := projectfs.NewProjectFS(o.mainDir)
		pfs.SetVerbose(o.verbose)
		o.patcher = pfs
	}

	spec.Fields = append([]string(nil), spec.Fields...)
	return &Generator{
		spec:      spec,
		mainDir:   o.mainDir,
		appDir:    spec.AppName,
		fields:    specs,
		catalog:   catalog,
		loader:    templates.NewLoader(),
		fs:        o.patcher,
		skipAdmin: o.skipAdmin,
		skipURLs:  o.skipURLs,
	}, nil
}

// AppName returns the app name.
func (g *Generator) AppName() string { return g.spec.AppName }

// ModelName returns the model class name.
func (g *Generator) ModelName() string { return g.spec.ModelName }

// MainDir returns the directory holding the app directory.
func (g *Generator) MainDir() string { return g.mainDir }

// Fields returns the raw field tokens.
func (g *Generator) Fields() []string {
	return append([]string(nil), g.spec.Fields...)
}

// AppDir returns the app directory path.
func (g *Generator) AppDir() string {
	return filepath.Join(g.mainDir, g.appDir)
}

// path returns the patcher path of a target file.
func (g *Generator) path(kind templates.FileKind) string {
	return filepath.Join(g.appDir, kind.Filename())
}

// PluralName returns the display plural of the model, e.g. "Articles".
func (g *Generator) PluralName() string {
	return inflect.Pluralize(g.spec.ModelName)
}

// RoutePrefix returns the route path of the resource, e.g. "articles".
func (g *Generator) RoutePrefix() string {
	return inflect.Pluralize(strings.ToLower(g.spec.ModelName))
}

// FieldsString renders the field declarations of the resource.
func (g *Generator) FieldsString() (string, error) {
	return g.catalog.RenderAll(g.fields)
}

// GetFieldsString parses and renders arbitrary raw field tokens with the
// generator's field catalog.
func (g *Generator) GetFieldsString(raw []string) (string, error) {
	return g.catalog.FieldsString(raw)
}

func (g *Generator) data() (templates.ArtifactData, error) {
	block, err := g.FieldsString()
	if err != nil {
		return templates.ArtifactData{}, err
	}
	return templates.ArtifactData{
		Model:      g.spec.ModelName,
		Fields:     block,
		FieldNames: fields.Names(g.fields),
		Plural:     g.PluralName(),
		Route:      g.RoutePrefix(),
	}, nil
}

// parts renders the head and body templates of one artifact.
func (g *Generator) parts(head, body templates.Name) (string, string, error) {
	data, err := g.data()
	if err != nil {
		return "", "", err
	}

	h, err := g.loader.LoadAndRender(head, data)
	if err != nil {
		return "", "", err
	}
	b, err := g.loader.LoadAndRender(body, data)
	if err != nil {
		return "", "", err
	}
	return h, b, nil
}

// ModelString renders the model class.
func (g *Generator) ModelString() (string, error) {
	_, body, err := g.ModelParts()
	return body, err
}

// ModelParts renders the models.py import head and model class body.
func (g *Generator) ModelParts() (head, body string, err error) {
	return g.parts(templates.ModelHead, templates.ModelBody)
}

// AdminParts renders the admin.py model import and registration block.
func (g *Generator) AdminParts() (head, body string, err error) {
	return g.parts(templates.AdminHead, templates.AdminBody)
}

// SerializerParts renders the serializers.py model import and serializer class.
func (g *Generator) SerializerParts() (head, body string, err error) {
	return g.parts(templates.SerializerHead, templates.SerializerBody)
}

// ViewSetParts renders the views.py imports and view-set class.
func (g *Generator) ViewSetParts() (head, body string, err error) {
	return g.parts(templates.ViewSetHead, templates.ViewSetBody)
}

// URLParts renders the urls.py view-set import and router registration line.
func (g *Generator) URLParts() (head, body string, err error) {
	return g.parts(templates.URLHead, templates.URLBody)
}
