// Package config loads acibeam settings from a config file and ACIBEAM_*
// environment variables using viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/alexiusacademia/acibeam/internal/aci"
)

// Name is the config file base name and the env prefix.
const Name = "acibeam"

// Materials are the default material properties (psi).
type Materials struct {
	Fc float64 `mapstructure:"fc"`
	Fy float64 `mapstructure:"fy"`
	Es float64 `mapstructure:"es"`
}

// Geometry holds default geometry (in).
type Geometry struct {
	// Cover is the distance from the bottom fiber to the tension steel centroid.
	Cover float64 `mapstructure:"cover"`
}

// Server configures the HTTP API.
type Server struct {
	Addr  string  `mapstructure:"addr"`
	Rate  float64 `mapstructure:"rate"` // requests per second per client IP
	Burst int     `mapstructure:"burst"`
}

// Output controls terminal rendering.
type Output struct {
	Color bool `mapstructure:"color"`
}

// Config is the full configuration.
type Config struct {
	Materials Materials `mapstructure:"materials"`
	Geometry  Geometry  `mapstructure:"geometry"`
	Server    Server    `mapstructure:"server"`
	Output    Output    `mapstructure:"output"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("materials.fc", aci.DefaultFc)
	v.SetDefault("materials.fy", aci.DefaultFy)
	v.SetDefault("materials.es", aci.DefaultEs)
	v.SetDefault("geometry.cover", 2.5)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.rate", 5.0)
	v.SetDefault("server.burst", 10)
	v.SetDefault("output.color", true)
}

// Init prepares v: defaults, environment binding and config file search
// paths. cfgFile, when set, replaces the search.
func Init(v *viper.Viper, cfgFile string) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(Name)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", Name))
		}
	}

	v.SetEnvPrefix(strings.ToUpper(Name))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Read loads the config file if one is found. A missing file in the
// search paths is not an error; an explicit file that cannot be read is.
func Read(v *viper.Viper) (string, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("reading config: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// Load unmarshals v into a Config and checks it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings no analysis could use.
func (c *Config) Validate() error {
	switch {
	case c.Materials.Fc <= 0:
		return fmt.Errorf("config: materials.fc must be positive, got %g", c.Materials.Fc)
	case c.Materials.Fy <= 0:
		return fmt.Errorf("config: materials.fy must be positive, got %g", c.Materials.Fy)
	case c.Materials.Es <= 0:
		return fmt.Errorf("config: materials.es must be positive, got %g", c.Materials.Es)
	case c.Geometry.Cover < 0:
		return fmt.Errorf("config: geometry.cover must not be negative, got %g", c.Geometry.Cover)
	case c.Server.Rate <= 0 || c.Server.Burst <= 0:
		return fmt.Errorf("config: server.rate and server.burst must be positive")
	}
	return nil
}
