// Package buildinfo exposes the build metadata embedded in the vergen binary
// itself. It is the consuming end of the instructions the generator emits:
//
//	go build -ldflags "$(vergen generate --format ldflags)"
//
// populates the variables below. Binaries installed with `go install` fall
// back to the module version recorded by the toolchain.
package buildinfo

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Populated via -ldflags at build time. The variable names match the
// ldflags serialization of the generator's instruction keys.
var (
	// BuildSemver is the semantic version (e.g., "v1.2.3").
	BuildSemver = "dev"

	// BuildDate is the build calendar date (e.g., "2026-08-26").
	BuildDate = "unknown"

	// BuildTime is the build clock time (e.g., "11-22-34").
	BuildTime = "unknown"

	// BuildTimestamp is the combined RFC 3339 build timestamp.
	BuildTimestamp = "unknown"
)

// Version returns the effective version string. It prefers the
// ldflags-injected semver and falls back to the module version embedded by
// `go install`.
func Version() string {
	if BuildSemver != "dev" {
		return BuildSemver
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return BuildSemver
}

// String returns the formatted build information for display.
func String() string {
	return fmt.Sprintf("version: %s\nbuilt: %s\ngo: %s %s/%s",
		Version(), BuildTimestamp, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\nbuilt: %s\ngo: %s %s/%s\n",
		Version(), BuildTimestamp, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
