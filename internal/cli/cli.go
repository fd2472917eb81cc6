// Package cli implements the vergen command-line interface.
//
// The CLI wraps the pkg/vergen instruction engine: it loads the generation
// configuration (TOML file plus VERGEN_* environment overrides), runs the
// generator once, and serializes the resulting entries for the host build
// tool. Two wire formats are supported:
//
//   - env: one KEY=value line per instruction, for pipelines that export
//     the values into the build environment.
//   - ldflags: a single line of -X 'pkg.Var=value' fragments, ready for
//     `go build -ldflags "$(vergen generate --format ldflags)"`.
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context, so recoverable omissions (for example a
// missing version string) surface only at debug level while fatal
// conditions abort the run with a non-zero exit.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Atrox/vergen/pkg/buildinfo"
)

// Execute runs the vergen CLI. This is the main entry point for the
// application; ctx carries cancellation from the process signal handler.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:   "vergen",
		Short: "vergen generates build metadata instructions",
		Long: `vergen generates compile-time metadata instructions for a build:
date/time of the build, the package version, and the Go toolchain in use.
The instructions are emitted as key/value directives that a build pipeline
embeds into the resulting binary, typically via go build -ldflags.`,
		Version:      buildinfo.Version(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
