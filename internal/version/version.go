// Package version holds build metadata injected via ldflags.
package version

// Service is the canonical service name used in startup logs.
const Service = "searchd"

//nolint:revive // Set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String renders the build identity as "searchd <version> (<commit>)".
func String() string {
	return Service + " " + Version + " (" + Commit + ")"
}
