// Package version contains the version of the watchman executable.
package version

// BuildVersion is set at build time via -ldflags.
var BuildVersion = "unknown"
