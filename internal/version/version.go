// Package version provides build-time version information for tint.
// Version information is injected at build time using ldflags.
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the semantic version of the application.
	// Injected at build time via: -ldflags "-X github.com/jmylchreest/tint/internal/version.Version=x.y.z".
	Version = "dev"

	// Commit is the git commit hash of the build.
	Commit = "unknown"

	// Date is the build date in RFC3339 format.
	Date = "unknown"

	// GoVersion is the Go version used to build the binary.
	GoVersion = runtime.Version()
)

// String returns a human-readable version string.
func String() string {
	platform := fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
	if Commit != "unknown" && Date != "unknown" {
		return fmt.Sprintf("tint version %s (commit: %s, built: %s, %s, %s)",
			Version, shortCommit(), Date, GoVersion, platform)
	}
	return fmt.Sprintf("tint version %s (%s, %s)", Version, GoVersion, platform)
}

// Short returns a short version string suitable for CLI output.
func Short() string {
	return Version
}

func shortCommit() string {
	if len(Commit) > 8 {
		return Commit[:8]
	}
	return Commit
}
