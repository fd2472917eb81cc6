package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Atrox/vergen/pkg/vergen"
)

// Output formats for the generate command.
const (
	formatEnv     = "env"     // one KEY=value line per instruction
	formatLdflags = "ldflags" // -X fragments for go build -ldflags
)

// defaultLdflagsTarget is the package whose variables receive the -X values
// when no --target is given. It declares the VERGEN_BUILD_* variables; the
// linker silently ignores -X fragments naming variables a target does not
// declare.
const defaultLdflagsTarget = "github.com/Atrox/vergen/pkg/buildinfo"

// ldflagsVars maps instruction keys to the Go variable names used in -X
// fragments.
var ldflagsVars = map[vergen.Key]string{
	vergen.KeyBuildDate:      "BuildDate",
	vergen.KeyBuildTime:      "BuildTime",
	vergen.KeyBuildTimestamp: "BuildTimestamp",
	vergen.KeyBuildSemver:    "BuildSemver",
	vergen.KeyGoVersion:      "GoVersion",
	vergen.KeyGoOS:           "GoOS",
	vergen.KeyGoArch:         "GoArch",
}

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	config string // configuration file path (empty: vergen.toml if present)
	format string // output format: env, ldflags
	target string // package path for -X fragments (ldflags format)
	semver string // version override for VERGEN_BUILD_SEMVER
	output string // output file path (empty: stdout)
}

// newGenerateCmd creates the generate command. It runs the instruction
// generator once and serializes the entries in the requested format.
func newGenerateCmd() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate build metadata instructions",
		Long: `Generate build metadata instructions and write them to stdout.

The configuration is read from vergen.toml (or --config) with VERGEN_*
environment variables taking precedence. The package version comes from
` + vergen.VersionEnv + ` or the --semver flag.

Examples:
  # KEY=value lines, one per instruction
  vergen generate

  # feed go build directly
  go build -ldflags "$(vergen generate --format ldflags)" ./cmd/app`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatEnv && opts.format != formatLdflags {
				return fmt.Errorf("unknown format %q (expected %s or %s)", opts.format, formatEnv, formatLdflags)
			}
			return runGenerate(cmd.Context(), cmd.OutOrStdout(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "configuration file (default: vergen.toml if present)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatEnv, "output format: env, ldflags")
	cmd.Flags().StringVar(&opts.target, "target", defaultLdflagsTarget, "package path receiving -X variables (ldflags format)")
	cmd.Flags().StringVar(&opts.semver, "semver", "", "package version (overrides "+vergen.VersionEnv+")")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to file instead of stdout")

	return cmd
}

// runGenerate loads the configuration, runs the generator, and serializes
// the output. A fatal generator error (unresolvable local time) propagates
// up and aborts the build.
func runGenerate(ctx context.Context, stdout io.Writer, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	in, err := loadInstructions(logger, opts.config)
	if err != nil {
		return err
	}

	g := vergen.NewGenerator(logger)
	if opts.semver != "" {
		semver := opts.semver
		g.SetLookupEnv(func(key string) (string, bool) {
			if key == vergen.VersionEnv {
				return semver, true
			}
			return os.LookupEnv(key)
		})
	}

	prog := newProgress(logger)
	out, err := g.Generate(in)
	if err != nil {
		return err
	}

	w := stdout
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := writeInstructions(w, out, opts.format, opts.target); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("generated %d instructions", out.Len()))
	return nil
}

// writeInstructions serializes out in the given format.
func writeInstructions(w io.Writer, out *vergen.Output, format, target string) error {
	if format == formatLdflags {
		return writeLdflags(w, out, target)
	}
	return writeEnv(w, out)
}

// writeEnv writes one KEY=value line per instruction in insertion order.
func writeEnv(w io.Writer, out *vergen.Output) error {
	for _, key := range out.Keys() {
		value, _ := out.Get(key)
		if _, err := fmt.Fprintf(w, "%s=%s\n", key.Name(), value); err != nil {
			return err
		}
	}
	return nil
}

// writeLdflags writes a single line of -X fragments suitable for
// `go build -ldflags "$(...)"`.
func writeLdflags(w io.Writer, out *vergen.Output, target string) error {
	frags := make([]string, 0, out.Len())
	for _, key := range out.Keys() {
		value, _ := out.Get(key)
		frags = append(frags, fmt.Sprintf("-X '%s.%s=%s'", target, ldflagsVars[key], value))
	}
	_, err := fmt.Fprintln(w, strings.Join(frags, " "))
	return err
}
