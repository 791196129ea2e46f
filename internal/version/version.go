// Package version holds the build version and the release-feed update check.
package version

// Bumped as part of each release
const (
	Version = "0.3.0"
	Name    = "quado"
)
