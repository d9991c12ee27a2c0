// Package testingx provides testing utilities for scaffolding tests.
//
// Overview:
//   - Responsibility: Temporary app directories, file readers and output capture
//   - Key Types: App
//   - Concurrency Model: One App per test
//   - Error Semantics: Test failures via testing.T
//   - Performance Notes: Uses t.TempDir, cleaned up automatically
//
// Usage:
//
//	app := testingx.NewApp(t, "blog")
//	body := app.Read(t, "models.py")
package testingx

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"go.eggybyte.com/drscaffold/internal/templates"
	"go.eggybyte.com/drscaffold/internal/ui"
)

// App is a temporary main directory holding one app directory.
type App struct {
	MainDir string // directory the app lives in
	Name    string // app name
}

// NewApp creates a main directory with an app directory seeded with the five
// empty target files.
func NewApp(t *testing.T, name string) *App {
	t.Helper()
	app := NewEmptyMainDir(t, name)
	if err := os.MkdirAll(app.Dir(), 0755); err != nil {
		t.Fatalf("Failed to create app dir: %v", err)
	}
	for _, kind := range templates.FileKinds {
		if err := os.WriteFile(app.Path(kind.Filename()), nil, 0644); err != nil {
			t.Fatalf("Failed to create %s: %v", kind.Filename(), err)
		}
	}
	return app
}

// NewEmptyMainDir returns an App whose directory does not exist yet.
func NewEmptyMainDir(t *testing.T, name string) *App {
	t.Helper()
	return &App{MainDir: t.TempDir(), Name: name}
}

// Dir returns the app directory.
func (a *App) Dir() string {
	return filepath.Join(a.MainDir, a.Name)
}

// Path returns the path of a file inside the app directory.
func (a *App) Path(file string) string {
	return filepath.Join(a.Dir(), file)
}

// Read returns the content of a file inside the app directory.
func (a *App) Read(t *testing.T, file string) string {
	t.Helper()
	data, err := os.ReadFile(a.Path(file))
	if err != nil {
		t.Fatalf("Failed to read %s: %v", file, err)
	}
	return string(data)
}

// Write replaces the content of a file inside the app directory.
func (a *App) Write(t *testing.T, file, content string) {
	t.Helper()
	if err := os.WriteFile(a.Path(file), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", file, err)
	}
}

// Snapshot reads all five target files keyed by file name.
func (a *App) Snapshot(t *testing.T) map[string]string {
	t.Helper()
	out := make(map[string]string, len(templates.FileKinds))
	for _, kind := range templates.FileKinds {
		out[kind.Filename()] = a.Read(t, kind.Filename())
	}
	return out
}

// CaptureUI redirects ui output into buffers for the duration of the test.
func CaptureUI(t *testing.T) (stdout, stderr *bytes.Buffer) {
	t.Helper()
	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	ui.SetOutput(stdout, stderr)
	t.Cleanup(func() {
		ui.SetOutput(os.Stdout, os.Stderr)
		ui.SetVerbose(false)
		ui.SetJSONOutput(false)
	})
	return stdout, stderr
}
