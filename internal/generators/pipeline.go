package generators

import (
	"strings"

	"go.eggybyte.com/drscaffold/internal/errors"
	"go.eggybyte.com/drscaffold/internal/projectfs"
	"go.eggybyte.com/drscaffold/internal/templates"
	"go.eggybyte.com/drscaffold/internal/ui"
)

// routeRegion delimits the router registrations in urls.py.
var routeRegion = projectfs.Region{
	Start: templates.RouteRegionStart,
	End:   templates.RouteRegionEnd,
}

// step is one stage of the API pipeline.
type step struct {
	name string
	kind templates.FileKind
	run  func() error
}

func (g *Generator) steps() []step {
	steps := []step{
		{"Generating model", templates.FileModels, g.GenerateModels},
		{"Generating serializer", templates.FileSerializers, g.GenerateSerializers},
	}
	if !g.skipAdmin {
		steps = append(steps, step{"Registering model to admin", templates.FileAdmin, g.RegisterModelsToAdmin})
	}
	steps = append(steps, step{"Generating view set", templates.FileViews, g.GenerateViews})
	if !g.skipURLs {
		steps = append(steps, step{"Registering route", templates.FileURLs, g.GenerateURLs})
	}
	return steps
}

// SetupFiles creates the app directory and its five target files, seeding
// each with its import boilerplate. Existing files keep their content.
//
// Returns:
//   - error: File system error if any
func (g *Generator) SetupFiles() error {
	if err := g.fs.CreateDirectory(g.appDir); err != nil {
		return err
	}

	paths := make([]string, 0, len(templates.FileKinds))
	snippets := make([]string, 0, len(templates.FileKinds))
	for _, kind := range templates.FileKinds {
		setup, err := g.loader.LoadTemplate(templates.SetupName(kind))
		if err != nil {
			return err
		}
		paths = append(paths, g.path(kind))
		snippets = append(snippets, setup)
	}
	return g.fs.AddSetupImports(paths, snippets)
}

// mergeImports inserts the setup boilerplate of kind followed by head into
// the import block of the file. Each import line is merged on its own.
func (g *Generator) mergeImports(kind templates.FileKind, head string) error {
	setup, err := g.loader.LoadTemplate(templates.SetupName(kind))
	if err != nil {
		return err
	}

	path := g.path(kind)
	var paths, snippets []string
	for _, line := range strings.Split(setup+head, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		paths = append(paths, path)
		snippets = append(snippets, line+"\n")
	}
	return g.fs.AddSetupImports(paths, snippets)
}

// emit merges the head of an artifact and appends its body once.
func (g *Generator) emit(kind templates.FileKind, head, body string) error {
	if err := g.mergeImports(kind, head); err != nil {
		return err
	}
	result, err := g.fs.AppendOnce(g.path(kind), body)
	if err != nil {
		return err
	}
	ui.Debug("%s: %s", g.path(kind), result)
	return nil
}

// GenerateModels writes the model class to models.py.
func (g *Generator) GenerateModels() error {
	head, body, err := g.ModelParts()
	if err != nil {
		return err
	}
	return g.emit(templates.FileModels, head, body)
}

// GenerateSerializers writes the model serializer to serializers.py.
func (g *Generator) GenerateSerializers() error {
	head, body, err := g.SerializerParts()
	if err != nil {
		return err
	}
	return g.emit(templates.FileSerializers, head, body)
}

// RegisterModelsToAdmin registers the model in admin.py.
func (g *Generator) RegisterModelsToAdmin() error {
	head, body, err := g.AdminParts()
	if err != nil {
		return err
	}
	return g.emit(templates.FileAdmin, head, body)
}

// GenerateViews writes the model view set to views.py.
func (g *Generator) GenerateViews() error {
	head, body, err := g.ViewSetParts()
	if err != nil {
		return err
	}
	return g.emit(templates.FileViews, head, body)
}

// GenerateURLs registers the view set in the route region of urls.py.
// Registrations already in the region are kept in order and the new line is
// added last; a line already present leaves the file untouched.
//
// Returns:
//   - error: File system error if any
func (g *Generator) GenerateURLs() error {
	head, line, err := g.URLParts()
	if err != nil {
		return err
	}
	if err := g.mergeImports(templates.FileURLs, head); err != nil {
		return err
	}

	path := g.path(templates.FileURLs)
	text, err := g.fs.ReadFile(path)
	if err != nil {
		return err
	}

	body, found := projectfs.RegionBody(text, routeRegion)
	if found && projectfs.ContainsSnippet(body, line) {
		ui.Debug("%s: route %q already registered", path, g.RoutePrefix())
		return nil
	}

	result, err := g.fs.ReplaceFileChunk(path, routeRegion, body+line+"\n")
	if err != nil {
		return err
	}
	ui.Debug("%s: %s", path, result)
	return nil
}

// GenerateAPI runs the artifact steps in order: models, serializers, admin,
// views, urls. The first failing step aborts the run; files written by
// earlier steps are kept.
//
// Returns:
//   - error: First step error, wrapped with the step's file
func (g *Generator) GenerateAPI() error {
	steps := g.steps()
	for i, s := range steps {
		ui.Step(i+1, len(steps), "%s (%s)", s.name, s.kind.Filename())
		if err := s.run(); err != nil {
			if errors.CodeOf(err) != "" {
				return err
			}
			return errors.Wrap(errors.CodeInternal, "generators."+string(s.kind), err)
		}
	}
	return nil
}

// GenerateApp sets up the app files and generates the full API.
func (g *Generator) GenerateApp() error {
	if err := g.SetupFiles(); err != nil {
		return err
	}
	return g.GenerateAPI()
}

// Run generates the app and reports progress through ui.
func (g *Generator) Run() error {
	ui.Info("Scaffolding %s in app %s (%s)", g.spec.ModelName, g.spec.AppName, g.AppDir())
	if err := g.GenerateApp(); err != nil {
		return err
	}
	ui.Success("%s API generated in %s", g.spec.ModelName, g.AppDir())
	routes, err := g.Routes()
	if err != nil {
		return err
	}
	ui.Debug("%d route(s) registered in %s", len(routes), g.spec.AppName)
	return nil
}
