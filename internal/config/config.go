// Package config loads and validates run configurations from yaml
// files and provides named presets.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates a configuration that cannot drive a run.
var ErrInvalid = errors.New("config: invalid value")

const (
	DefaultParticles       = 125
	DefaultBoxLength       = 10.0
	DefaultCutoff          = 3.0
	DefaultEpsilon         = 1.0
	DefaultSigma           = 1.0
	DefaultTemperature     = 0.9
	DefaultSteps           = 50000
	DefaultMaxDisplacement = 0.1
	DefaultAdjustEvery     = 1000
	DefaultSampleEvery     = 100
)

type Config struct {
	Particles       int     `yaml:"particles"`
	BoxLength       float64 `yaml:"box_length"`
	Cutoff          float64 `yaml:"cutoff"`
	Epsilon         float64 `yaml:"epsilon"`
	Sigma           float64 `yaml:"sigma"`
	Temperature     float64 `yaml:"temperature"`
	Steps           int     `yaml:"steps"`
	MaxDisplacement float64 `yaml:"max_displacement"`
	AdjustEvery     int     `yaml:"adjust_every"`
	SampleEvery     int     `yaml:"sample_every"`
	Seed            int64   `yaml:"seed"`
	Replicas        int     `yaml:"replicas"`
	Init            Init    `yaml:"init"`
}

type Init struct {
	// Method is "random", "lattice" or "file".
	Method string `yaml:"method"`
	// File is the xyz path for the file method.
	File string `yaml:"file"`
}

func DefaultConfig() *Config {
	return &Config{
		Particles:       DefaultParticles,
		BoxLength:       DefaultBoxLength,
		Cutoff:          DefaultCutoff,
		Epsilon:         DefaultEpsilon,
		Sigma:           DefaultSigma,
		Temperature:     DefaultTemperature,
		Steps:           DefaultSteps,
		MaxDisplacement: DefaultMaxDisplacement,
		AdjustEvery:     DefaultAdjustEvery,
		SampleEvery:     DefaultSampleEvery,
		Seed:            1,
		Replicas:        1,
		Init:            Init{Method: "lattice"},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Beta is the inverse reduced temperature 1/T.
func (c *Config) Beta() float64 { return 1 / c.Temperature }

func (c *Config) Validate() error {
	if c.Particles <= 0 {
		return fmt.Errorf("%w: particles %d", ErrInvalid, c.Particles)
	}
	if c.BoxLength <= 0 {
		return fmt.Errorf("%w: box_length %v", ErrInvalid, c.BoxLength)
	}
	if c.Cutoff <= 0 || c.Cutoff >= c.BoxLength/2 {
		return fmt.Errorf("%w: cutoff %v must lie in (0, box_length/2)", ErrInvalid, c.Cutoff)
	}
	if c.Epsilon <= 0 || c.Sigma <= 0 {
		return fmt.Errorf("%w: epsilon %v, sigma %v", ErrInvalid, c.Epsilon, c.Sigma)
	}
	if c.Temperature <= 0 {
		return fmt.Errorf("%w: temperature %v", ErrInvalid, c.Temperature)
	}
	if c.Steps <= 0 {
		return fmt.Errorf("%w: steps %d", ErrInvalid, c.Steps)
	}
	if c.MaxDisplacement <= 0 {
		return fmt.Errorf("%w: max_displacement %v", ErrInvalid, c.MaxDisplacement)
	}
	if c.AdjustEvery <= 0 || c.SampleEvery <= 0 {
		return fmt.Errorf("%w: adjust_every %d, sample_every %d", ErrInvalid, c.AdjustEvery, c.SampleEvery)
	}
	if c.Replicas <= 0 {
		return fmt.Errorf("%w: replicas %d", ErrInvalid, c.Replicas)
	}
	switch c.Init.Method {
	case "random", "lattice":
	case "file":
		if c.Init.File == "" {
			return fmt.Errorf("%w: init method file requires a path", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: init method %q", ErrInvalid, c.Init.Method)
	}
	return nil
}
