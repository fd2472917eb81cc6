package vergen

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
)

// VersionEnv is the environment variable holding the host package's declared
// version, consumed by the VERGEN_BUILD_SEMVER instruction.
const VersionEnv = "VERGEN_PKG_VERSION"

// Formats for the date/time instructions. The time format uses hyphens so
// the value stays safe in file names and ldflags fragments.
const (
	dateFormat = "2006-01-02"
	timeFormat = "15-04-05"
)

// Generator turns an Instructions configuration into an Output. It is
// stateless across runs; the zero dependencies (clock, environment) are
// injectable for tests and for callers that need a frozen snapshot.
type Generator struct {
	clock  func(TimeZone) (time.Time, error)
	lookup func(string) (string, bool)
	logger *log.Logger
}

// NewGenerator creates a generator that reads the system clock and process
// environment. A nil logger falls back to log.Default().
func NewGenerator(logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{
		clock:  systemClock,
		lookup: os.LookupEnv,
		logger: logger,
	}
}

// SetClock replaces the snapshot source. Useful for tests and for
// reproducible pipelines that pin the build instant themselves.
func (g *Generator) SetClock(clock func(TimeZone) (time.Time, error)) {
	g.clock = clock
}

// SetLookupEnv replaces the environment reader used for the version string.
func (g *Generator) SetLookupEnv(lookup func(string) (string, bool)) {
	g.lookup = lookup
}

// Generate produces the instruction entries for in. Each call returns a
// fresh Output; the generator performs no work besides one clock read and
// one environment read per enabled category.
//
// The only fatal condition is an unresolvable local timezone when local
// timestamps were requested (ErrLocalTimezone); every other missing input
// degrades to omitting the affected entry.
func (g *Generator) Generate(in Instructions) (*Output, error) {
	out := NewOutput()
	if err := g.build(in.Build, out); err != nil {
		return nil, err
	}
	g.toolchain(in.Toolchain, out)
	return out, nil
}

// Generate runs a generator with default dependencies. See
// Generator.Generate.
func Generate(in Instructions) (*Output, error) {
	return NewGenerator(nil).Generate(in)
}

// build emits the VERGEN_BUILD_* entries.
func (g *Generator) build(cfg Build, out *Output) error {
	if !cfg.HasEnabled() {
		return nil
	}

	if cfg.Timestamp {
		// One snapshot per run keeps the date, time, and combined
		// timestamp entries mutually consistent.
		now, err := g.clock(cfg.Timezone)
		if err != nil {
			return fmt.Errorf("capturing build timestamp: %w", err)
		}
		addTimestampEntries(out, cfg.Kind, now)
	}

	if cfg.Semver {
		if version, ok := g.lookup(VersionEnv); ok && version != "" {
			out.add(KeyBuildSemver, version)
		} else {
			g.logger.Debug("omitting build semver", "reason", VersionEnv+" not set")
		}
	}
	return nil
}

// addTimestampEntries dispatches on kind to decide which of the three
// date/time entries derive from now.
func addTimestampEntries(out *Output, kind TimestampKind, now time.Time) {
	switch kind {
	case KindDateOnly:
		out.add(KeyBuildDate, now.Format(dateFormat))
	case KindTimeOnly:
		out.add(KeyBuildTime, now.Format(timeFormat))
	case KindDateAndTime:
		out.add(KeyBuildDate, now.Format(dateFormat))
		out.add(KeyBuildTime, now.Format(timeFormat))
	case KindAll:
		out.add(KeyBuildDate, now.Format(dateFormat))
		out.add(KeyBuildTime, now.Format(timeFormat))
		out.add(KeyBuildTimestamp, now.Format(time.RFC3339))
	default: // KindTimestamp
		out.add(KeyBuildTimestamp, now.Format(time.RFC3339))
	}
}

// toolchain emits the VERGEN_GO_* entries. It never fails: the values come
// from the runtime package.
func (g *Generator) toolchain(cfg Toolchain, out *Output) {
	if !cfg.HasEnabled() {
		return
	}
	if cfg.Version {
		out.add(KeyGoVersion, runtime.Version())
	}
	if cfg.Platform {
		out.add(KeyGoOS, runtime.GOOS)
		out.add(KeyGoArch, runtime.GOARCH)
	}
}
