// Package buildinfo carries the immutable build identity of the
// executable front end. Values are stamped at link time via -ldflags.
package buildinfo

import "fmt"

// Stamped at build time; defaults cover plain `go build`.
var (
	Version    = "0.1.0"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// BuildInfo holds the build identity of an executable artifact.
type BuildInfo struct {
	Version    string
	CommitHash string
	BuildDate  string
}

// Get returns the stamped build information.
func Get() BuildInfo {
	return BuildInfo{Version: Version, CommitHash: CommitHash, BuildDate: BuildDate}
}

// String returns the build info as a string.
func (i BuildInfo) String() string {
	return fmt.Sprintf("version %s (%s) built on %s", i.Version, i.CommitHash, i.BuildDate)
}
