package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog"

	"github.com/reban87/employee-record/internal/employee"
	"github.com/reban87/employee-record/internal/library/yamlenv"
	"github.com/reban87/employee-record/internal/library/yamlreader"
)

const DefaultPath = "config/application-local.yaml"

type Config struct {
	Log    LogConfig    `yaml:"log"`
	Output OutputConfig `yaml:"output"`
}

type LogConfig struct {
	Level  *yamlenv.Env[string] `yaml:"level"`
	Pretty *yamlenv.Env[bool]   `yaml:"pretty"`
}

type OutputConfig struct {
	Style *yamlenv.Env[string] `yaml:"style"`
}

func Default() *Config {
	cfg := &Config{}
	cfg.fillDefaults()

	return cfg
}

// Load reads the config at path. A missing file is only an error when the
// path was asked for explicitly; otherwise defaults are used.
func Load(path string, explicit bool) (*Config, error) {
	cfg, err := yamlreader.NewConfig[Config](path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("yamlreader.NewConfig: %w", err)
	}

	cfg.fillDefaults()

	if _, err := cfg.Log.ZerologLevel(); err != nil {
		return nil, err
	}

	if _, err := cfg.Output.EmployeeStyle(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) fillDefaults() {
	if c.Log.Level == nil {
		c.Log.Level = yamlenv.New("info")
	}

	if c.Log.Pretty == nil {
		c.Log.Pretty = yamlenv.New(false)
	}

	if c.Output.Style == nil {
		c.Output.Style = yamlenv.New(string(employee.StyleCanonical))
	}
}

func (c LogConfig) ZerologLevel() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.Level.Value)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid value in field 'log.level'=%s: %w", c.Level.Value, err)
	}

	return lvl, nil
}

func (c OutputConfig) EmployeeStyle() (employee.Style, error) {
	st, err := employee.ParseStyle(c.Style.Value)
	if err != nil {
		return "", fmt.Errorf("invalid value in field 'output.style': %w", err)
	}

	return st, nil
}
