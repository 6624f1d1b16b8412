// Package buildinfo holds version metadata stamped in at build time.
package buildinfo

// Set via -ldflags during release builds.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
