// Package version reports the build identity of the outreach binary.
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
// Without ldflags the commit and time fall back to the VCS stamp that
// `go build` embeds in the binary.
func String() string {
	commit, built := Commit, BuildTime
	if commit == "unknown" || built == "unknown" {
		vcsCommit, vcsTime, dirty := readVCS()
		if commit == "unknown" && vcsCommit != "" {
			commit = vcsCommit
			if dirty {
				commit += "-dirty"
			}
		}
		if built == "unknown" && vcsTime != "" {
			built = vcsTime
		}
	}
	return fmt.Sprintf("outreach dev (commit: %s, built: %s)", shortCommit(commit), built)
}

func readVCS() (commit, at string, dirty bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", "", false
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			commit = s.Value
		case "vcs.time":
			at = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	return commit, at, dirty
}

func shortCommit(commit string) string {
	if len(commit) > 7 && commit[7] != '-' {
		if n := len(commit); n > 6 && commit[n-6:] == "-dirty" {
			return commit[:7] + "-dirty"
		}
		return commit[:7]
	}
	return commit
}
