package version

import (
	"fmt"
	"runtime/debug"
)

// These variables are set at build time via ldflags
var (
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns the version string (commit-hash based, no semver).
// Without ldflags the VCS revision stamped by the go tool is used.
func String() string {
	return fmt.Sprintf("lister dev (commit: %s, built: %s)", shortCommit(), BuildTime)
}

func shortCommit() string {
	commit := Commit
	if commit == "unknown" {
		commit = buildRevision()
	}
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}

func buildRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			return s.Value
		}
	}
	return "unknown"
}
