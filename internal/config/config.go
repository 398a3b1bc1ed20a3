package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DefaultXKind = "human"
	DefaultXName = "Human"
	DefaultOKind = "minimax"
	DefaultOName = "MiniMax"
)

type Config struct {
	LogLevel       string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Silent         bool   `yaml:"silent" env:"SILENT"`
	ParallelSearch bool   `yaml:"parallel-search" env:"PARALLEL_SEARCH"`
	PlayerX        Player `yaml:"player-x" env-prefix:"PLAYER_X_"`
	PlayerO        Player `yaml:"player-o" env-prefix:"PLAYER_O_"`
}

// Player selects the strategy for one side of the board.
type Player struct {
	Kind string `yaml:"kind" env:"KIND"`
	Name string `yaml:"name" env:"NAME"`
}

// Load reads the config file at path and the environment. A missing file is not an error:
// the environment and the defaults are used instead.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path != "" && fileExists(path) {
		if err := cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	} else if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	config.PlayerX.setDefaults(DefaultXKind, DefaultXName)
	config.PlayerO.setDefaults(DefaultOKind, DefaultOName)

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Player) setDefaults(kind, name string) {
	if that.Kind == "" {
		that.Kind = kind
		if that.Name == "" {
			that.Name = name
		}
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)

	return !errors.Is(err, os.ErrNotExist)
}
