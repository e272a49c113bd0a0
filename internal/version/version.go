// Package version exposes build-time version information.
package version

// Set at build time with -ldflags "-X ...".
var (
	// Version is the semantic version of the viewer.
	Version = "0.1.0"

	// BuildTime is the UTC build timestamp.
	BuildTime = "unknown"

	// GitCommit is the git commit the binary was built from.
	GitCommit = "unknown"
)
