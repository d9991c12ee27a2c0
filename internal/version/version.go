// Package version provides version information for the drscaffold CLI.
//
// Overview:
//   - Responsibility: CLI version metadata (version, commit, build time)
//   - Key Types: Version variables and functions
//   - Concurrency Model: Set at link time, read-only afterwards
//   - Error Semantics: No errors
//   - Performance Notes: Zero-cost constants
//
// Usage:
//
//	import "go.eggybyte.com/drscaffold/internal/version"
//	version.GetVersionString()
package version

import (
	"fmt"
	"runtime"
)

// Version is the CLI version, set with -ldflags during release builds.
var Version = "v0.1.0-dev"

// Commit is the git commit hash.
var Commit = "unknown"

// BuildTime is the build timestamp in RFC3339 format.
var BuildTime = "unknown"

// GetVersionString returns the full version string in the format:
// drscaffold version v0.1.0 (commit 4a9b2c1, built 2025-10-31T12:10:00Z)
func GetVersionString() string {
	return fmt.Sprintf("drscaffold version %s (commit %s, built %s)", Version, Commit, BuildTime)
}

// GetFullVersionInfo returns the version string followed by the Go toolchain
// and platform.
//
// Returns:
//   - string: Multi-line version information
func GetFullVersionInfo() string {
	return fmt.Sprintf(`%s
go version %s (%s/%s)`,
		GetVersionString(),
		runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
