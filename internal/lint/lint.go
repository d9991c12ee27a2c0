// Package lint checks a scaffolded app directory for broken or missing pieces.
//
// Overview:
//   - Responsibility: Validate app files, setup imports, route region and registrations
//   - Key Types: Linter, LintResult, LintResults
//   - Concurrency Model: Stateless, safe for concurrent use
//   - Error Semantics: Findings are results; only file system failures are errors
//   - Performance Notes: Each app file is read once
//
// Usage:
//
//	results, err := lint.NewLinter().Check(fs, "blog")
package lint

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"go.eggybyte.com/drscaffold/internal/generators"
	"go.eggybyte.com/drscaffold/internal/projectfs"
	"go.eggybyte.com/drscaffold/internal/templates"
	"go.eggybyte.com/drscaffold/internal/ui"
)

// Result levels.
const (
	LevelError   = "error"
	LevelWarning = "warning"
	LevelInfo    = "info"
)

var (
	modelClassPattern = regexp.MustCompile(`(?m)^class\s+([A-Za-z_][A-Za-z0-9_]*)\s*\(\s*models\.Model\s*\)`)
	classPattern      = regexp.MustCompile(`(?m)^class\s+([A-Za-z_][A-Za-z0-9_]*)\s*[(:]`)
)

// Linter checks app directories.
type Linter struct {
	loader *templates.Loader
}

// LintResult represents one finding.
//
// Parameters:
//   - Rule: Rule name
//   - Level: Severity level
//   - Message: Human-readable message
//   - Path: File the finding refers to
//   - Suggestion: Fix suggestion
type LintResult struct {
	Rule       string `json:"rule"`
	Level      string `json:"level"`
	Message    string `json:"message"`
	Path       string `json:"path,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// LintResults represents a collection of findings.
type LintResults struct {
	Results      []LintResult `json:"results"`
	ErrorCount   int          `json:"error_count"`
	WarningCount int          `json:"warning_count"`
	InfoCount    int          `json:"info_count"`
}

func (r *LintResults) add(result LintResult) {
	r.Results = append(r.Results, result)
	switch result.Level {
	case LevelError:
		r.ErrorCount++
	case LevelWarning:
		r.WarningCount++
	case LevelInfo:
		r.InfoCount++
	}
}

// NewLinter creates a new app linter.
func NewLinter() *Linter {
	return &Linter{
		loader: templates.NewLoader(),
	}
}

// Check lints the app directory app under the root of fs.
//
// Parameters:
//   - fs: Project file system rooted at the main directory
//   - app: App directory name
//
// Returns:
//   - *LintResults: Findings in rule order
//   - error: File system error if any
//
// Concurrency:
//   - Single-threaded
func (l *Linter) Check(fs *projectfs.ProjectFS, app string) (*LintResults, error) {
	ui.Debug("Linting app %s in %s", app, fs.GetRootDir())

	results := &LintResults{Results: make([]LintResult, 0)}

	files, err := l.checkAppStructure(fs, app, results)
	if err != nil {
		return nil, err
	}
	if files == nil {
		return results, nil
	}

	if err := l.checkSetupImports(app, files, results); err != nil {
		return nil, err
	}
	l.checkRoutes(app, files, results)
	l.checkAdmin(app, files, results)

	return results, nil
}

// checkAppStructure reads the five app files. It returns nil when the app
// directory itself is missing.
func (l *Linter) checkAppStructure(fs *projectfs.ProjectFS, app string, results *LintResults) (map[templates.FileKind]string, error) {
	exists, err := fs.DirectoryExists(app)
	if err != nil {
		return nil, err
	}
	if !exists {
		results.add(LintResult{
			Rule:       "app-structure",
			Level:      LevelError,
			Message:    fmt.Sprintf("App directory missing: %s", app),
			Path:       app,
			Suggestion: fmt.Sprintf("Run 'drscaffold scaffold %s <Model>' to create it", app),
		})
		return nil, nil
	}

	names, err := fs.ListFiles(app)
	if err != nil {
		return nil, err
	}
	present := make(map[string]bool, len(names))
	for _, name := range names {
		present[name] = true
	}

	files := make(map[templates.FileKind]string, len(templates.FileKinds))
	for _, kind := range templates.FileKinds {
		path := filepath.Join(app, kind.Filename())
		if !present[kind.Filename()] {
			results.add(LintResult{
				Rule:       "app-structure",
				Level:      LevelError,
				Message:    fmt.Sprintf("App file missing: %s", kind.Filename()),
				Path:       path,
				Suggestion: "Run any scaffold command for this app to create it",
			})
			continue
		}

		text, err := fs.ReadFile(path)
		if err != nil {
			return nil, err
		}
		files[kind] = text
	}
	return files, nil
}

func (l *Linter) checkSetupImports(app string, files map[templates.FileKind]string, results *LintResults) error {
	for _, kind := range templates.FileKinds {
		text, ok := files[kind]
		if !ok {
			continue
		}
		setup, err := l.loader.LoadTemplate(templates.SetupName(kind))
		if err != nil {
			return err
		}
		if !projectfs.ContainsSnippet(text, setup) {
			results.add(LintResult{
				Rule:       "setup-imports",
				Level:      LevelWarning,
				Message:    fmt.Sprintf("Missing import: %s", strings.TrimSpace(setup)),
				Path:       filepath.Join(app, kind.Filename()),
				Suggestion: "Add the import at the top of the file",
			})
		}
	}
	return nil
}

// checkRoutes validates the route region and that every registered view set
// is imported and defined.
func (l *Linter) checkRoutes(app string, files map[templates.FileKind]string, results *LintResults) {
	urls, ok := files[templates.FileURLs]
	if !ok {
		return
	}
	path := filepath.Join(app, templates.FileURLs.Filename())

	hasStart := projectfs.ContainsSnippet(urls, templates.RouteRegionStart)
	hasEnd := projectfs.ContainsSnippet(urls, templates.RouteRegionEnd)
	_, _, found := projectfs.FindRegion(urls, projectfs.Region{Start: templates.RouteRegionStart, End: templates.RouteRegionEnd})

	switch {
	case !hasStart && !hasEnd:
		results.add(LintResult{
			Rule:    "route-region",
			Level:   LevelInfo,
			Message: "No routes registered yet",
			Path:    path,
		})
		return
	case !found:
		results.add(LintResult{
			Rule:       "route-region",
			Level:      LevelError,
			Message:    "Route region is incomplete or out of order",
			Path:       path,
			Suggestion: fmt.Sprintf("Keep %q before %q", templates.RouteRegionStart, templates.RouteRegionEnd),
		})
		return
	}

	defined := make(map[string]bool)
	if views, ok := files[templates.FileViews]; ok {
		for _, m := range classPattern.FindAllStringSubmatch(views, -1) {
			defined[m[1]] = true
		}
	}

	for _, route := range generators.ParseRoutes(urls) {
		if strings.Contains(route.ViewSet, ".") {
			continue
		}
		if !projectfs.ContainsSnippet(urls, "from .views import "+route.ViewSet) {
			results.add(LintResult{
				Rule:       "route-imports",
				Level:      LevelError,
				Message:    fmt.Sprintf("View set %s is registered but not imported", route.ViewSet),
				Path:       path,
				Suggestion: fmt.Sprintf("Add 'from .views import %s'", route.ViewSet),
			})
		}
		if !defined[route.ViewSet] {
			results.add(LintResult{
				Rule:    "route-viewsets",
				Level:   LevelWarning,
				Message: fmt.Sprintf("View set %s for route %q is not defined in views.py", route.ViewSet, route.Prefix),
				Path:    filepath.Join(app, templates.FileViews.Filename()),
			})
		}
	}
}

// checkAdmin reports models that are not registered in admin.py.
func (l *Linter) checkAdmin(app string, files map[templates.FileKind]string, results *LintResults) {
	models, ok := files[templates.FileModels]
	if !ok {
		return
	}
	admin, ok := files[templates.FileAdmin]
	if !ok {
		return
	}

	for _, m := range modelClassPattern.FindAllStringSubmatch(models, -1) {
		model := m[1]
		if strings.Contains(admin, "@admin.register("+model+")") || strings.Contains(admin, "admin.site.register("+model) {
			continue
		}
		results.add(LintResult{
			Rule:       "admin-registration",
			Level:      LevelInfo,
			Message:    fmt.Sprintf("Model %s is not registered in the admin", model),
			Path:       filepath.Join(app, templates.FileAdmin.Filename()),
			Suggestion: fmt.Sprintf("Run 'drscaffold scaffold %s %s' without --skip-admin", app, model),
		})
	}
}
