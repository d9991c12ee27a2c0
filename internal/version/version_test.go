package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestGetVersionString(t *testing.T) {
	oldVersion, oldCommit, oldBuild := Version, Commit, BuildTime
	t.Cleanup(func() { Version, Commit, BuildTime = oldVersion, oldCommit, oldBuild })

	Version, Commit, BuildTime = "v1.2.3", "abc1234", "2025-10-31T12:10:00Z"

	want := "drscaffold version v1.2.3 (commit abc1234, built 2025-10-31T12:10:00Z)"
	if got := GetVersionString(); got != want {
		t.Errorf("GetVersionString() = %q, want %q", got, want)
	}

	full := GetFullVersionInfo()
	if !strings.HasPrefix(full, want+"\n") {
		t.Errorf("GetFullVersionInfo() should start with the version string, got %q", full)
	}
	if !strings.Contains(full, runtime.Version()) {
		t.Errorf("GetFullVersionInfo() should mention %s, got %q", runtime.Version(), full)
	}
}
