package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ActionTake  = "take"
	ActionReset = "reset"
)

type Config struct {
	LogLevel        string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat       string   `yaml:"log-format" env:"LOG_FORMAT" env-default:"json"`
	HumanToken      string   `yaml:"human-token" env:"HUMAN_TOKEN" env-default:""`
	MetricsTextfile string   `yaml:"metrics-textfile" env:"METRICS_TEXTFILE" env-default:""`
	Actions         []Action `yaml:"actions"`
}

// Action is one scripted request against the game. An empty action means take.
type Action struct {
	Action string `yaml:"action"`
	Player string `yaml:"player"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}
