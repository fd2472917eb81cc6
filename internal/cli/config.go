package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/Atrox/vergen/pkg/vergen"
)

const (
	// defaultConfigFile is looked up in the working directory when no
	// --config flag is given. Its absence is not an error.
	defaultConfigFile = "vergen.toml"

	// envPrefix scopes the environment overrides, e.g.
	// VERGEN_BUILD_TIMEZONE=local or VERGEN_TOOLCHAIN_ENABLED=false.
	envPrefix = "vergen"
)

// loadInstructions assembles the generation configuration in three layers:
// the documented defaults, an optional TOML file, and VERGEN_* environment
// overrides. Later layers win.
//
// An explicitly requested file must exist and parse; the default file is
// skipped silently when missing. A .env file in the working directory is
// loaded first (non-fatal, never overrides existing variables) so local
// runs can pin overrides without exporting them.
func loadInstructions(logger *log.Logger, path string) (vergen.Instructions, error) {
	in := vergen.DefaultInstructions()

	if err := godotenv.Load(); err == nil {
		logger.Debug("loaded .env file")
	}

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &in); err != nil {
			return vergen.Instructions{}, fmt.Errorf("parsing %s: %w", path, err)
		}
		logger.Debug("loaded configuration file", "path", path)
	case explicit || !errors.Is(err, fs.ErrNotExist):
		return vergen.Instructions{}, fmt.Errorf("reading config: %w", err)
	}

	if err := envconfig.Process(envPrefix, &in); err != nil {
		return vergen.Instructions{}, fmt.Errorf("applying environment overrides: %w", err)
	}

	return in, nil
}
