package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/domino14/longeffect/geometry"
	"github.com/domino14/longeffect/longeffect"
)

const (
	ConfigDebug       = "debug"
	ConfigFiles       = "files"
	ConfigRanks       = "ranks"
	ConfigExtractor   = "extractor"
	ConfigHistoryFile = "history-file"
)

type Config struct {
	*viper.Viper
}

// DefaultConfig is a 9x9 board using the window extractor. Tests use it
// directly instead of parsing arguments.
func DefaultConfig() Config {
	c := Config{Viper: viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigFiles, geometry.Shogi.Files)
	c.SetDefault(ConfigRanks, geometry.Shogi.Ranks)
	c.SetDefault(ConfigExtractor, longeffect.WindowExtractor.String())
	c.SetDefault(ConfigHistoryFile, "/tmp/longeffect_history.tmp")
}

// Load parses command-line args and LONGEFFECT_* environment variables.
// Flags win over the environment.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()
	c.setDefaults()

	fs := pflag.NewFlagSet("longeffect", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.Int(ConfigFiles, geometry.Shogi.Files, "number of files on the board")
	fs.Int(ConfigRanks, geometry.Shogi.Ranks, "number of ranks on the board")
	fs.String(ConfigExtractor, longeffect.WindowExtractor.String(), "neighbour extractor: window or gather")
	fs.String(ConfigHistoryFile, "/tmp/longeffect_history.tmp", "shell history file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.SetEnvPrefix("LONGEFFECT")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	return c.validate()
}

func (c *Config) validate() error {
	if _, err := cast.ToBoolE(c.Get(ConfigDebug)); err != nil {
		return fmt.Errorf("bad %s value: %w", ConfigDebug, err)
	}
	if err := c.Geometry().Validate(); err != nil {
		return fmt.Errorf("bad board dimensions: %w", err)
	}
	if _, err := c.Extractor(); err != nil {
		return err
	}
	return nil
}

// Geometry returns the configured board.
func (c *Config) Geometry() geometry.Board {
	return geometry.Board{Files: c.GetInt(ConfigFiles), Ranks: c.GetInt(ConfigRanks)}
}

// Extractor returns the configured neighbour extractor.
func (c *Config) Extractor() (longeffect.Extractor, error) {
	return longeffect.ParseExtractor(c.GetString(ConfigExtractor))
}

// SetKey changes a key at runtime; only known keys are accepted.
func (c *Config) SetKey(key, value string) error {
	switch key {
	case ConfigDebug, ConfigFiles, ConfigRanks, ConfigExtractor, ConfigHistoryFile:
	default:
		return errors.New("unknown config key " + key)
	}
	old := c.Get(key)
	c.Set(key, value)
	if err := c.validate(); err != nil {
		c.Set(key, old)
		return err
	}
	return nil
}

// SanitizedSettings is a loggable view of the config.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
