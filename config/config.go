// Package config reads the runtime settings of the shortest CLI from an
// optional YAML file, overlaid with SHORTEST_* environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Environments select the log handler.
const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

var (
	// ErrRead indicates the config file or environment could not be read.
	ErrRead = errors.New("config: read")

	// ErrInvalid indicates a field failed validation.
	ErrInvalid = errors.New("config: invalid")
)

// Config holds every setting the CLI accepts. Flags override these values.
type Config struct {
	Environment  string `yaml:"env" env:"SHORTEST_ENV" env-default:"local" validate:"oneof=local dev prod"`
	Source       int    `yaml:"source" env:"SHORTEST_SOURCE" env-default:"1" validate:"gte=1"`
	Format       string `yaml:"format" env:"SHORTEST_FORMAT" env-default:"text" validate:"oneof=text json yaml"`
	Region       string `yaml:"region" env:"SHORTEST_REGION" env-default:"load+solve" validate:"oneof=load+solve solve"`
	LenientCount bool   `yaml:"lenient_count" env:"SHORTEST_LENIENT_COUNT"`
	Workers      int    `yaml:"workers" env:"SHORTEST_WORKERS" env-default:"1" validate:"gte=1,lte=64"`
	TimingLog    string `yaml:"timing_log" env:"SHORTEST_TIMING_LOG"`
	MetricsFile  string `yaml:"metrics_file" env:"SHORTEST_METRICS_FILE"`
	ShowGraph    bool   `yaml:"show_graph" env:"SHORTEST_SHOW_GRAPH"`
	MaxLineBytes int    `yaml:"max_line_bytes" env:"SHORTEST_MAX_LINE_BYTES" env-default:"0" validate:"gte=0"`
}

// Load reads the file at path, or only the environment when path is empty,
// and validates the result.
func Load(path string) (*Config, error) {
	var cfg Config

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(path, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field ranges and enumerations.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s failed %q (value %v)", ErrInvalid, fe.Field(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())
