// Package projectfs provides file system operations and idempotent patching
// for scaffolded app files.
//
// Overview:
//   - Responsibility: Create app directories and files, merge imports, append and replace managed chunks
//   - Key Types: ProjectFS, Region, PatchResult
//   - Concurrency Model: Sequential file operations, no locking across invocations
//   - Error Semantics: File system errors wrapped with CodeInternal; missing files are created, not reported
//   - Performance Notes: Each patch reads and rewrites one file; unchanged files are not written
//
// Usage:
//
//	fs := projectfs.NewProjectFS(".")
//	err := fs.AddSetupImports([]string{"blog/models.py"}, []string{"from django.db import models\n"})
//	res, err := fs.ReplaceFileChunk("blog/urls.py", region, "router.register(r'articles', ArticleViewSet)\n")
package projectfs

import (
	"io/fs"
	"os"
	"path/filepath"

	"go.eggybyte.com/drscaffold/internal/errors"
	"go.eggybyte.com/drscaffold/internal/ui"
)

// ProjectFS provides file system operations rooted at a project directory.
// Absolute paths are used as given; relative paths are joined to the root.
//
// Parameters:
//   - rootDir: Root directory for operations
//   - verbose: Whether to show file operations
//
// Concurrency:
//   - Not safe for concurrent patches of the same file
type ProjectFS struct {
	rootDir string
	verbose bool
}

// NewProjectFS creates a new project file system.
//
// Parameters:
//   - rootDir: Root directory for operations
//
// Returns:
//   - *ProjectFS: Project file system instance
func NewProjectFS(rootDir string) *ProjectFS {
	return &ProjectFS{
		rootDir: rootDir,
		verbose: false,
	}
}

// SetVerbose enables or disables verbose output.
func (fs *ProjectFS) SetVerbose(enabled bool) {
	fs.verbose = enabled
}

// GetRootDir returns the root directory.
func (fs *ProjectFS) GetRootDir() string {
	return fs.rootDir
}

// GetAbsolutePath resolves a path against the root directory.
//
// Parameters:
//   - path: Relative or absolute path
//
// Returns:
//   - string: The path itself when absolute, otherwise joined to the root
func (fs *ProjectFS) GetAbsolutePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(fs.rootDir, path)
}

func (fs *ProjectFS) debug(format string, args ...interface{}) {
	if fs.verbose {
		ui.Debug(format, args...)
	}
}

// CreateDirectory creates a directory and its parents if it doesn't exist.
//
// Parameters:
//   - path: Directory path relative to root
//
// Returns:
//   - error: File system error if any
func (fs *ProjectFS) CreateDirectory(path string) error {
	fullPath := fs.GetAbsolutePath(path)

	if info, err := os.Stat(fullPath); err == nil && info.IsDir() {
		fs.debug("Directory already exists: %s", path)
		return nil
	}

	if err := os.MkdirAll(fullPath, 0755); err != nil {
		return errors.Wrapf(errors.CodeInternal, "projectfs.CreateDirectory", err, "failed to create directory %s", path)
	}

	fs.debug("Created directory: %s", path)
	return nil
}

// WriteFile writes content to a file, creating parent directories.
//
// Parameters:
//   - path: File path relative to root
//   - content: File content
//   - mode: File permissions
//
// Returns:
//   - error: File system error if any
func (fs *ProjectFS) WriteFile(path, content string, mode fs.FileMode) error {
	fullPath := fs.GetAbsolutePath(path)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return errors.Wrapf(errors.CodeInternal, "projectfs.WriteFile", err, "failed to create parent directory for %s", path)
	}

	if err := os.WriteFile(fullPath, []byte(content), mode); err != nil {
		return errors.Wrapf(errors.CodeInternal, "projectfs.WriteFile", err, "failed to write file %s", path)
	}

	fs.debug("Written file: %s", path)
	return nil
}

// WriteFileIfNotExists writes a file only if it doesn't exist.
//
// Returns:
//   - bool: True if file was written, false if it already existed
//   - error: File system error if any
func (fs *ProjectFS) WriteFileIfNotExists(path, content string, mode fs.FileMode) (bool, error) {
	exists, err := fs.FileExists(path)
	if err != nil {
		return false, err
	}

	if exists {
		fs.debug("File already exists, skipping: %s", path)
		return false, nil
	}

	if err := fs.WriteFile(path, content, mode); err != nil {
		return false, err
	}
	return true, nil
}

// EnsureFile creates an empty file if it doesn't exist.
//
// Returns:
//   - bool: True if the file was created
//   - error: File system error if any
func (fs *ProjectFS) EnsureFile(path string) (bool, error) {
	return fs.WriteFileIfNotExists(path, "", 0644)
}

// FileExists checks if a file exists.
func (fs *ProjectFS) FileExists(path string) (bool, error) {
	_, err := os.Stat(fs.GetAbsolutePath(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrapf(errors.CodeInternal, "projectfs.FileExists", err, "failed to stat %s", path)
}

// DirectoryExists checks if a directory exists.
func (fs *ProjectFS) DirectoryExists(path string) (bool, error) {
	info, err := os.Stat(fs.GetAbsolutePath(path))
	if err == nil {
		return info.IsDir(), nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrapf(errors.CodeInternal, "projectfs.DirectoryExists", err, "failed to stat %s", path)
}

// ReadFile reads content from a file.
//
// Returns:
//   - string: File content
//   - error: CodeNotFound if the file is missing, CodeInternal otherwise
func (fs *ProjectFS) ReadFile(path string) (string, error) {
	content, err := os.ReadFile(fs.GetAbsolutePath(path))
	if err != nil {
		code := errors.CodeInternal
		if os.IsNotExist(err) {
			code = errors.CodeNotFound
		}
		return "", errors.Wrapf(code, "projectfs.ReadFile", err, "failed to read file %s", path)
	}
	return string(content), nil
}

// ListFiles lists the regular files in a directory.
func (fs *ProjectFS) ListFiles(path string) ([]string, error) {
	entries, err := os.ReadDir(fs.GetAbsolutePath(path))
	if err != nil {
		return nil, errors.Wrapf(errors.CodeInternal, "projectfs.ListFiles", err, "failed to list files in %s", path)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() {
			files = append(files, entry.Name())
		}
	}
	return files, nil
}

// AddSetupImports merges each snippet into the import block of the file at the
// same index. Snippets already present verbatim are skipped; missing files are
// created first.
//
// Parameters:
//   - paths: Target files
//   - snippets: Import snippets, one per path
//
// Returns:
//   - error: CodeInvalidArgument on length mismatch, file system error otherwise
//
// Performance:
//   - One read and at most one write per pair
func (fs *ProjectFS) AddSetupImports(paths, snippets []string) error {
	if len(paths) != len(snippets) {
		return errors.Newf(errors.CodeInvalidArgument, "got %d paths for %d import snippets", len(paths), len(snippets))
	}

	for i, path := range paths {
		if _, err := fs.patch(path, func(text string) (string, PatchResult) {
			return InsertImport(text, snippets[i])
		}); err != nil {
			return err
		}
	}
	return nil
}

// AppendOnce appends snippet to the end of the file unless it is already
// present verbatim.
//
// Returns:
//   - PatchResult: Appended or Unchanged
//   - error: File system error if any
func (fs *ProjectFS) AppendOnce(path, snippet string) (PatchResult, error) {
	return fs.patch(path, func(text string) (string, PatchResult) {
		return AppendSnippet(text, snippet)
	})
}

// ReplaceFileChunk replaces the interior of region in the file with content,
// or appends a newly delimited chunk when the markers are not found.
//
// Parameters:
//   - path: Target file
//   - region: Start and end marker lines
//   - content: New interior
//
// Returns:
//   - PatchResult: Replaced, Appended or Unchanged
//   - error: File system error if any
func (fs *ProjectFS) ReplaceFileChunk(path string, region Region, content string) (PatchResult, error) {
	return fs.patch(path, func(text string) (string, PatchResult) {
		return ReplaceRegion(text, region, content)
	})
}

// patch applies an in-memory edit to a file, creating it empty when missing.
func (fs *ProjectFS) patch(path string, edit func(string) (string, PatchResult)) (PatchResult, error) {
	if _, err := fs.EnsureFile(path); err != nil {
		return Unchanged, err
	}

	text, err := fs.ReadFile(path)
	if err != nil {
		return Unchanged, err
	}

	updated, result := edit(text)
	if result == Unchanged {
		fs.debug("No changes: %s", path)
		return Unchanged, nil
	}

	if err := fs.WriteFile(path, updated, 0644); err != nil {
		return Unchanged, err
	}
	fs.debug("Patched %s (%s)", path, result)
	return result, nil
}
