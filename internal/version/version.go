// Package version exposes build metadata for `sitecfg --version`.
package version

import "fmt"

// Version is set via build-time ldflags:
// go build -ldflags "-X git.home.luguber.info/inful/sitecfg/internal/version.Version=v1.0.0".
var Version = "unknown"

// BuildInfo contains additional build metadata.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String renders the version line printed by the CLI.
func String() string {
	if GitCommit == "unknown" && BuildTime == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
