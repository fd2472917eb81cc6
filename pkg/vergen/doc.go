// Package vergen generates build-time metadata instructions.
//
// An instruction is a named string value (for example VERGEN_BUILD_TIMESTAMP)
// that a build pipeline embeds into the compiled binary, typically through
// `go build -ldflags "-X pkg.Var=value"`. The package is the instruction
// engine only: it turns a configuration plus a single clock reading into an
// ordered set of key/value entries. Serializing those entries for a
// particular build tool is the caller's concern.
//
// # Instructions
//
// Two instruction categories are supported:
//
//   - build: VERGEN_BUILD_DATE, VERGEN_BUILD_TIME, VERGEN_BUILD_TIMESTAMP,
//     and VERGEN_BUILD_SEMVER. Which of the date/time instructions are
//     emitted is controlled by the configured [TimestampKind]; the semver
//     value is read from the VERGEN_PKG_VERSION environment variable.
//   - toolchain: VERGEN_GO_VERSION, VERGEN_GO_OS, and VERGEN_GO_ARCH,
//     describing the Go toolchain performing the build.
//
// # Usage
//
//	in := vergen.DefaultInstructions()
//	in.Build.Kind = vergen.KindAll
//	in.Build.Timezone = vergen.TimeZoneLocal
//
//	out, err := vergen.Generate(in)
//	if err != nil {
//	    return err
//	}
//	for _, key := range out.Keys() {
//	    value, _ := out.Get(key)
//	    fmt.Printf("%s=%s\n", key.Name(), value)
//	}
//
// # Determinism
//
// All date/time instructions in one run derive from a single timestamp
// snapshot, so they are mutually consistent. When the SOURCE_DATE_EPOCH
// environment variable is set the snapshot is taken from it instead of the
// wall clock, which makes the emitted values reproducible across builds.
//
// # Errors
//
// Generation fails only when local time is requested but the local timezone
// cannot be resolved (see [ErrLocalTimezone]), or when SOURCE_DATE_EPOCH is
// set to an unparsable value. A missing version string degrades gracefully:
// the semver entry is simply omitted.
package vergen
