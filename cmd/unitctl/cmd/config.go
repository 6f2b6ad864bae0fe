package cmd

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// viperConfig resolves where unitctl looks for additional unit
// definition files and how it logs, layering sources the way
// CalcMark's cmd/calcmark/config package does: the environment
// overrides an XDG config file, paths from the --defs flag are loaded
// in addition to (after) those, and the bundled defaults
// (definitions.DefaultEnglish) always load first regardless of what
// this finds.
var viperConfig = viper.New()

func init() {
	viperConfig.SetEnvPrefix("UNITCTL")
	viperConfig.AutomaticEnv()
	viperConfig.SetDefault("log_level", "warn")

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		viperConfig.SetConfigFile(filepath.Join(home, ".config", "unitctl", "config.toml"))
		viperConfig.SetConfigType("toml")
		_ = viperConfig.ReadInConfig() // a missing/malformed config file just means no overrides
	}
}

// configureLogging sets the global zerolog level from UNITCTL_LOG_LEVEL
// / ~/.config/unitctl/config.toml's log_level key, falling back to
// warn so routine runs stay quiet and only surface the
// skipped-definition warnings registry.LoadReader logs.
func configureLogging() {
	level, err := zerolog.ParseLevel(viperConfig.GetString("log_level"))
	if err != nil {
		level = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true})
}

// extraDefinitionFiles returns additional definition file paths to
// load after the bundled defaults, from UNITCTL_DEFS (a
// filepath.ListSeparator-joined list) or the "definition_files" key
// in ~/.config/unitctl/config.toml.
func extraDefinitionFiles() []string {
	if raw := viperConfig.GetString("defs"); raw != "" {
		return filepath.SplitList(raw)
	}
	return viperConfig.GetStringSlice("definition_files")
}
