// Package config loads the optional gpstime settings file. The CLI
// surface is deliberately minimal (device argument plus baud flag), so
// operational knobs live here instead: the file is located by the
// GPSTIME_CONFIG environment variable, falling back to
// /etc/gpstime.yaml. A missing default file yields defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is consulted when GPSTIME_CONFIG is unset.
const DefaultPath = "/etc/gpstime.yaml"

type Config struct {
	// Baud is the serial rate used when the command-line flag is
	// absent. 0 lets the serial layer pick its default.
	Baud int `yaml:"baud"`

	// ReadTimeout bounds the whole run: if no usable time report
	// arrives within it, the run fails instead of blocking forever.
	// 0 (the default) blocks forever.
	ReadTimeout Duration `yaml:"read_timeout"`

	// LogLevel is a zerolog level name. Empty means "info".
	LogLevel string `yaml:"log_level"`
}

// Load reads the settings file selected by the environment. When no
// file is explicitly configured and the default path does not exist,
// defaults are returned without error.
func Load() (Config, error) {
	path := os.Getenv("GPSTIME_CONFIG")
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return parse(nil)
		}
		return Config{}, err
	}
	return parse(b)
}

func parse(b []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}

	if cfg.Baud < 0 {
		return Config{}, fmt.Errorf("baud must be >= 0")
	}
	if cfg.ReadTimeout < 0 {
		return Config{}, fmt.Errorf("read_timeout must be >= 0")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// Duration is a time.Duration that unmarshals from YAML strings like
// "30s" or "2m".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	v, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(v)
	return nil
}
