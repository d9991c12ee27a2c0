package generators

import (
	"path/filepath"
	"regexp"

	"go.eggybyte.com/drscaffold/internal/errors"
	"go.eggybyte.com/drscaffold/internal/projectfs"
	"go.eggybyte.com/drscaffold/internal/templates"
)

var registerPattern = regexp.MustCompile(`^\s*router\.register\(\s*r?['"]([^'"]*)['"]\s*,\s*([A-Za-z_][A-Za-z0-9_.]*)`)

// Route is one router registration in urls.py.
type Route struct {
	Prefix  string // URL prefix, e.g. "articles"
	ViewSet string // view set class, e.g. "ArticleViewSet"
}

// ParseRoutes extracts the registrations inside the route region of a urls.py
// text, in file order. Text without a region has no routes.
func ParseRoutes(text string) []Route {
	body, ok := projectfs.RegionBody(text, routeRegion)
	if !ok {
		return nil
	}

	var routes []Route
	for _, m := range registerPattern.FindAllStringSubmatch(body, -1) {
		routes = append(routes, Route{Prefix: m[1], ViewSet: m[2]})
	}
	return routes
}

// Routes lists the routes registered in the app's urls.py.
//
// Returns:
//   - []Route: Registrations in file order
//   - error: CodeNotFound when urls.py does not exist
func (g *Generator) Routes() ([]Route, error) {
	text, err := g.fs.ReadFile(g.path(templates.FileURLs))
	if err != nil {
		return nil, err
	}
	return ParseRoutes(text), nil
}

// ListRoutes reads the routes of app inside mainDir without a resource spec.
func ListRoutes(mainDir, app string) ([]Route, error) {
	if app == "" {
		return nil, errors.New(errors.CodeInvalidArgument, "app name is required")
	}
	if mainDir == "" {
		mainDir = DefaultMainDir
	}

	pfs := projectfs.NewProjectFS(mainDir)
	text, err := pfs.ReadFile(filepath.Join(app, templates.FileURLs.Filename()))
	if err != nil {
		return nil, err
	}
	return ParseRoutes(text), nil
}
