package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the defaults of a game session. Values are read from an
// optional YAML file and TERMSWEEP_* environment variables.
type Config struct {
	Width    int    `yaml:"width" env:"TERMSWEEP_WIDTH" env-default:"9"`
	Height   int    `yaml:"height" env:"TERMSWEEP_HEIGHT" env-default:"9"`
	NumMines int    `yaml:"mines" env:"TERMSWEEP_MINES" env-default:"10"`
	Seed     int64  `yaml:"seed" env:"TERMSWEEP_SEED" env-default:"0"`
	MapPath  string `yaml:"map" env:"TERMSWEEP_MAP"`

	History    int    `yaml:"history" env:"TERMSWEEP_HISTORY" env-default:"20"`
	FlagOpened bool   `yaml:"flag-opened" env:"TERMSWEEP_FLAG_OPENED" env-default:"true"`
	Color      bool   `yaml:"color" env:"TERMSWEEP_COLOR" env-default:"true"`
	LogLevel   string `yaml:"log-level" env:"TERMSWEEP_LOG_LEVEL" env-default:"warning"`
}

// Load reads the config file at path, or the environment alone when path is
// empty.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (config *Config) Validate() error {
	if config.MapPath == "" {
		if config.Width <= 0 || config.Height <= 0 {
			return fmt.Errorf("invalid board size %dx%d", config.Width, config.Height)
		}
		if config.NumMines <= 0 {
			return fmt.Errorf("invalid mine count %d", config.NumMines)
		}
	}
	if config.History < 0 {
		return fmt.Errorf("invalid history size %d", config.History)
	}
	return nil
}
