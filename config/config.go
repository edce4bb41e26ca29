package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"mancala/game"
	"mancala/meta"
)

const (
	ModeHumanVsComputer    = "hvc"
	ModeComputerVsComputer = "cvc"
	ModeExperiment         = "experiment"
)

type Config struct {
	Mode          string `yaml:"mode"`
	HumanSide     string `yaml:"human_side"`
	Starter       string `yaml:"starter"` // "human", "computer" or empty to ask
	Depth         int    `yaml:"depth"`
	Games         int    `yaml:"games"`
	Seed          uint64 `yaml:"seed"`
	LogLevel      string `yaml:"log_level"`
	Colors        bool   `yaml:"colors"`
	ExperimentDir string `yaml:"experiment_dir"`
}

func Default() Config {
	return Config{
		Mode:          ModeHumanVsComputer,
		HumanSide:     "P1",
		Depth:         meta.SEARCH_DEPTH,
		Games:         10,
		Seed:          1,
		LogLevel:      "info",
		Colors:        true,
		ExperimentDir: "experiments/out",
	}
}

// Load reads a YAML config file on top of the defaults. A missing file is
// not an error: the defaults are returned as they are. The result is not
// validated, so callers can apply overrides before calling Validate.
func Load(path string) (Config, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return c, nil
}

func (c Config) Validate() error {
	switch c.Mode {
	case ModeHumanVsComputer, ModeComputerVsComputer, ModeExperiment:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if _, err := game.ParseSide(c.HumanSide); err != nil {
		return fmt.Errorf("human_side: %w", err)
	}
	switch c.Starter {
	case "", "human", "computer":
	default:
		return fmt.Errorf("unknown starter %q", c.Starter)
	}
	if c.Depth < 0 {
		return fmt.Errorf("depth must not be negative, got %d", c.Depth)
	}
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Human returns the side played by the human, P1 when unset.
func (c Config) Human() game.Side {
	side, err := game.ParseSide(c.HumanSide)
	if err != nil {
		return game.P1
	}
	return side
}

// Level returns the zerolog level for LogLevel, info when unset.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return level
}
