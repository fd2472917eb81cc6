package vergen

import (
	"fmt"
	"strings"
)

// TimeZone selects which clock the date/time instructions sample.
type TimeZone int

// Supported timezones. The zero value is UTC, matching the default
// configuration.
const (
	// TimeZoneUTC samples the wall clock in Coordinated Universal Time.
	TimeZoneUTC TimeZone = iota
	// TimeZoneLocal samples the wall clock in the system's local timezone.
	TimeZoneLocal
)

// String returns the textual form used in configuration files and
// environment overrides.
func (tz TimeZone) String() string {
	switch tz {
	case TimeZoneLocal:
		return "local"
	default:
		return "utc"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (tz TimeZone) MarshalText() ([]byte, error) {
	return []byte(tz.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Recognized values are
// "utc" and "local" (case-insensitive); anything else is an error since the
// set of timezones is closed.
func (tz *TimeZone) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "utc":
		*tz = TimeZoneUTC
	case "local":
		*tz = TimeZoneLocal
	default:
		return fmt.Errorf("unknown timezone %q (expected utc or local)", text)
	}
	return nil
}

// TimestampKind selects which of the date/time instructions the build
// category emits.
type TimestampKind int

// Supported kinds. The zero value is KindTimestamp, matching the default
// configuration.
const (
	// KindTimestamp emits only the combined RFC 3339 timestamp.
	KindTimestamp TimestampKind = iota
	// KindDateOnly emits only the calendar date.
	KindDateOnly
	// KindTimeOnly emits only the clock time.
	KindTimeOnly
	// KindDateAndTime emits the date and the time, but not the combined
	// timestamp.
	KindDateAndTime
	// KindAll emits all three date/time instructions.
	KindAll
)

// String returns the textual form used in configuration files and
// environment overrides.
func (k TimestampKind) String() string {
	switch k {
	case KindDateOnly:
		return "date"
	case KindTimeOnly:
		return "time"
	case KindDateAndTime:
		return "date-and-time"
	case KindAll:
		return "all"
	default:
		return "timestamp"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k TimestampKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Recognized values are
// "date", "time", "date-and-time", "timestamp", and "all" (case-insensitive).
func (k *TimestampKind) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "date":
		*k = KindDateOnly
	case "time":
		*k = KindTimeOnly
	case "date-and-time":
		*k = KindDateAndTime
	case "timestamp":
		*k = KindTimestamp
	case "all":
		*k = KindAll
	default:
		return fmt.Errorf("unknown timestamp kind %q (expected date, time, date-and-time, timestamp, or all)", text)
	}
	return nil
}

// Build configures the VERGEN_BUILD_* instructions.
//
// The struct tags allow a configuration file (TOML) and environment
// overrides (envconfig with the "vergen" prefix) to populate it directly.
// The explicit envconfig names avoid colliding with the VERGEN_BUILD_TIMESTAMP
// and VERGEN_BUILD_SEMVER instruction values a previous run may have exported
// into the environment.
type Build struct {
	// Enabled is the master switch for the category. When false, no build
	// instruction is emitted regardless of the other fields.
	Enabled bool `toml:"enabled"`
	// Timestamp enables the date/time instructions.
	Timestamp bool `toml:"timestamp" envconfig:"TIMESTAMPS"`
	// Timezone selects the clock for the date/time instructions.
	Timezone TimeZone `toml:"timezone"`
	// Kind selects which date/time instructions are emitted.
	Kind TimestampKind `toml:"kind"`
	// Semver enables the VERGEN_BUILD_SEMVER instruction.
	Semver bool `toml:"semver" envconfig:"SEMVER_ENABLED"`
}

// DefaultBuild returns the build configuration used when the caller supplies
// no overrides: everything enabled, UTC, combined timestamp only.
func DefaultBuild() Build {
	return Build{
		Enabled:   true,
		Timestamp: true,
		Timezone:  TimeZoneUTC,
		Kind:      KindTimestamp,
		Semver:    true,
	}
}

// HasEnabled reports whether the category produces any output: the master
// switch must be on and at least one sub-feature active.
func (b Build) HasEnabled() bool {
	return b.Enabled && (b.Timestamp || b.Semver)
}

// Toolchain configures the VERGEN_GO_* instructions describing the Go
// toolchain performing the build.
type Toolchain struct {
	// Enabled is the master switch for the category.
	Enabled bool `toml:"enabled"`
	// Version enables the VERGEN_GO_VERSION instruction.
	Version bool `toml:"version"`
	// Platform enables the VERGEN_GO_OS and VERGEN_GO_ARCH instructions.
	Platform bool `toml:"platform"`
}

// DefaultToolchain returns the toolchain configuration used when the caller
// supplies no overrides: everything enabled.
func DefaultToolchain() Toolchain {
	return Toolchain{Enabled: true, Version: true, Platform: true}
}

// HasEnabled reports whether the category produces any output.
func (t Toolchain) HasEnabled() bool {
	return t.Enabled && (t.Version || t.Platform)
}

// Instructions aggregates the per-category configuration consumed by one
// generation run. It is plain data: mutate any field before generation, but
// never concurrently with it.
type Instructions struct {
	Build     Build     `toml:"build"`
	Toolchain Toolchain `toml:"toolchain"`
}

// DefaultInstructions returns the documented default configuration for all
// categories.
func DefaultInstructions() Instructions {
	return Instructions{
		Build:     DefaultBuild(),
		Toolchain: DefaultToolchain(),
	}
}
