package gae

import (
	"io/ioutil"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// Config bundles the hyperparameters of a training run. It is set
// once and never mutated while training.
type Config struct {
	HiddenDim    int     `yaml:"hidden_dim"`
	OutputDim    int     `yaml:"output_dim"`
	Layers       int     `yaml:"layers"`
	LearningRate float64 `yaml:"learning_rate"`
	Epochs       int     `yaml:"epochs"`
}

// DefaultConfig matches the walkthrough: two convolutions down to a
// 2-D embedding so the result can be scattered directly.
func DefaultConfig() Config {
	return Config{
		HiddenDim:    16,
		OutputDim:    2,
		Layers:       2,
		LearningRate: 0.01,
		Epochs:       100,
	}
}

// Valid returns nil if every hyperparameter is usable
func (c Config) Valid() error {
	if c.Layers < 1 {
		return errors.Errorf("need at least one layer, got %d", c.Layers)
	}
	if c.HiddenDim < 1 && c.Layers > 1 {
		return errors.Errorf("hidden dim must be positive, got %d", c.HiddenDim)
	}
	if c.OutputDim < 1 {
		return errors.Errorf("output dim must be positive, got %d", c.OutputDim)
	}
	if c.LearningRate <= 0 {
		return errors.Errorf("learning rate must be positive, got %g", c.LearningRate)
	}
	if c.Epochs < 1 {
		return errors.Errorf("epoch count must be positive, got %d", c.Epochs)
	}
	return nil
}

// LoadConfig reads a YAML config, starting from the defaults so a
// file only needs the fields it wants to override
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.UnmarshalStrict(buf, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := cfg.Valid(); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}
