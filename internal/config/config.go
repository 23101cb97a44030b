// Package config defines the recognized experiment options and their
// defaults. The reference configuration reproduces the published sweep:
// 8 sample sizes x 5 noise levels x 1000 repetitions.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
)

type Config struct {
	SampleSizes        []int     `yaml:"sample_sizes" validate:"required,min=1,dive,gte=1"`
	NoiseLevels        []float64 `yaml:"noise_levels" validate:"required,min=1,dive,gte=0,lte=0.4"`
	Repetitions        int       `yaml:"repetitions" validate:"gte=1"`
	Concurrency        int       `yaml:"concurrency" validate:"gte=0"`
	Seed               uint64    `yaml:"seed"`
	ClassAMean         []float64 `yaml:"class_a_mean" validate:"len=2"`
	ClassBMean         []float64 `yaml:"class_b_mean" validate:"len=2"`
	Variance           float64   `yaml:"variance" validate:"gt=0"`
	GeneralizationSize int       `yaml:"generalization_size" validate:"gte=1"`
	Output             string    `yaml:"output" validate:"required"`
}

func Default() Config {
	return Config{
		SampleSizes:        []int{10, 20, 30, 40, 50, 100, 500, 1000},
		NoiseLevels:        []float64{0, 0.1, 0.2, 0.3, 0.4},
		Repetitions:        1000,
		Concurrency:        0, // 0 means one worker per CPU
		Seed:               1,
		ClassAMean:         []float64{1, 1},
		ClassBMean:         []float64{2, 2},
		Variance:           0.5,
		GeneralizationSize: 10000,
		Output:             "data/results.json",
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults unchanged. The result is always validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		buf, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(buf, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
