package config

import (
	"fmt"
	"slices"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModePlay       = "play"
	ModeExperiment = "experiment"
)

type Config struct {
	LogLevel   string     `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Mode       string     `yaml:"mode" env:"MCTS_MODE" env-default:"play"`
	Iterations int        `yaml:"iterations" env:"MCTS_ITERATIONS" env-default:"10000"`
	Seed       uint64     `yaml:"seed" env:"MCTS_SEED" env-default:"0"`
	Experiment Experiment `yaml:"experiment"`
}

type Experiment struct {
	Dir     string `yaml:"dir" env:"MCTS_EXPERIMENT_DIR" env-default:"records"`
	Games   int    `yaml:"games" env:"MCTS_EXPERIMENT_GAMES" env-default:"20"`
	Budgets []int  `yaml:"budgets" env:"MCTS_EXPERIMENT_BUDGETS" env-default:"10,100,1000"`
}

// Load reads the YAML file at path, environment variables override it. An
// empty path reads the environment only.
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

	return config, config.Validate()
}

// MustLoad - load all configurations or panic.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

func (that *Config) Validate() error {
	if !slices.Contains([]string{ModePlay, ModeExperiment}, that.Mode) {
		return fmt.Errorf("unknown mode %q", that.Mode)
	}
	if that.Iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", that.Iterations)
	}
	if that.Experiment.Games <= 0 {
		return fmt.Errorf("experiment games must be positive, got %d", that.Experiment.Games)
	}
	return nil
}
