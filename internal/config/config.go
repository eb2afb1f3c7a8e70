// Package config loads montepi command configuration: environment first,
// then command-line flags on top.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/caarlos0/env/v11"
)

// Config holds every knob of the montepi command.
type Config struct {
	Samples   int    `env:"MONTEPI_SAMPLES" envDefault:"10000"`
	Dimension int    `env:"MONTEPI_DIMENSION" envDefault:"2"`
	Seed      *int64 `env:"MONTEPI_SEED"` // nil: pick a random seed
	Format    string `env:"MONTEPI_FORMAT" envDefault:"table"`

	// Optional outputs.
	DBPath     string `env:"MONTEPI_DB"`
	Trajectory string `env:"MONTEPI_TRAJECTORY"`
	StudyRuns  int    `env:"MONTEPI_STUDY_RUNS" envDefault:"0"`
	History    int    `env:"MONTEPI_HISTORY" envDefault:"0"` // list saved runs from DBPath instead

	OTelEndpoint string `env:"MONTEPI_OTEL_ENDPOINT"`
	OTelEnabled  bool   `env:"MONTEPI_OTEL_ENABLED" envDefault:"true"`
}

// ErrInvalidOptions indicates a negative count or a combination of settings
// where one of them would be silently ignored.
var ErrInvalidOptions = errors.New("config: invalid options")

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment into a Config and then applies flags from args.
// Flag usage and parse errors go to stderr. flag.ErrHelp is returned as is.
func Load(args []string, stderr io.Writer) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("montepi", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.Samples, "n", cfg.Samples, "number of Monte Carlo draws")
	fs.IntVar(&cfg.Dimension, "d", cfg.Dimension, "dimension of the sampled cube (>= 2)")
	fs.Func("seed", "random seed (default: random, printed with -format json)", func(s string) error {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid seed %q", s)
		}
		cfg.Seed = &v
		return nil
	})
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: table or json")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "append the summary to this SQLite database")
	fs.StringVar(&cfg.Trajectory, "trajectory", cfg.Trajectory, "write the convergence trajectory (JSON Lines) to this file")
	fs.IntVar(&cfg.StudyRuns, "study-runs", cfg.StudyRuns, "run a coverage study of this many seeded estimations instead")
	fs.IntVar(&cfg.History, "history", cfg.History, "list the latest N runs saved in -db instead of estimating")

	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Config{}, err
		}
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// validate rejects mode combinations where a setting would have no effect.
// A coverage study writes neither a trajectory nor run history; listing
// history needs a database and estimates nothing.
func (c Config) validate() error {
	switch {
	case c.StudyRuns < 0:
		return fmt.Errorf("%w: -study-runs must be >= 0, got %d", ErrInvalidOptions, c.StudyRuns)
	case c.History < 0:
		return fmt.Errorf("%w: -history must be >= 0, got %d", ErrInvalidOptions, c.History)
	case c.History > 0 && c.DBPath == "":
		return fmt.Errorf("%w: -history requires -db", ErrInvalidOptions)
	case c.History > 0 && (c.StudyRuns > 0 || c.Trajectory != ""):
		return fmt.Errorf("%w: -history cannot be combined with -study-runs or -trajectory", ErrInvalidOptions)
	case c.StudyRuns > 0 && (c.Trajectory != "" || c.DBPath != ""):
		return fmt.Errorf("%w: -study-runs cannot be combined with -trajectory or -db", ErrInvalidOptions)
	}
	return nil
}
