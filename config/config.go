// Package config handles thermact configuration loading.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/thermact/unifac"
	"github.com/katalvlaran/thermact/unifac/datasets"
	"github.com/katalvlaran/thermact/uniquac"
)

// Model names accepted in the model key.
const (
	ModelUNIFAC     = "unifac"
	ModelWeight     = "unifac-w"
	ModelFreeVolume = "unifac-fv"
	ModelVisco      = "unifac-visco"
	ModelUNIQUAC    = "uniquac"
)

const (
	defaultSteps       = 50
	defaultTemperature = 298.15
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the root configuration structure.
type Config struct {
	Model   string `yaml:"model"`
	Dataset string `yaml:"dataset"` // builtin name ("vle", "dor") or file path

	// Substances is either a mapping of name → declaration
	// ("ethanol: 1*CH3 1*CH2 1*OH") or a list of builtin substance names.
	// Kept as a node so mapping order survives decoding.
	Substances yaml.Node `yaml:"substances"`

	MolarMasses  []float64     `yaml:"molar_masses"`
	UNIQUAC      UNIQUACConfig `yaml:"uniquac"`
	Temperature  float64       `yaml:"temperature"`
	Composition  []float64     `yaml:"composition"`
	SumTolerance float64       `yaml:"sum_tolerance"`
	Plot         PlotConfig    `yaml:"plot"`
}

// UNIQUACConfig holds component parameters for the uniquac model.
// Tau[i][j] is the pair (c0, c1) of component i acting on j.
type UNIQUACConfig struct {
	Names []string      `yaml:"names"`
	R     []float64     `yaml:"r"`
	Q     []float64     `yaml:"q"`
	Tau   [][][]float64 `yaml:"tau"`
}

// PlotConfig holds binary-sweep output settings.
type PlotConfig struct {
	Output string `yaml:"output"` // .png/.svg/.pdf image or .csv table; empty disables
	Steps  int    `yaml:"steps"`
	Title  string `yaml:"title"`
	Excess bool   `yaml:"excess"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Model:       ModelUNIFAC,
		Dataset:     datasets.NameVLE,
		Temperature: defaultTemperature,
		Plot: PlotConfig{
			Steps: defaultSteps,
		},
	}
}

// Load reads a YAML file over Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML bytes over Default.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalid)
}

// Components returns the number of configured components.
func (c *Config) Components() int {
	if c.Model == ModelUNIQUAC {
		return len(c.UNIQUAC.R)
	}
	switch c.Substances.Kind {
	case yaml.MappingNode:
		return len(c.Substances.Content) / 2
	case yaml.SequenceNode:
		return len(c.Substances.Content)
	}

	return 0
}

// Validate checks the configuration for consistency before any model is
// built. Parameter values themselves are checked by the model constructors.
func (c *Config) Validate() error {
	switch c.Model {
	case ModelUNIFAC, ModelWeight, ModelFreeVolume, ModelVisco:
		if c.Dataset == "" {
			return invalidf("model %s needs a dataset", c.Model)
		}
		if k := c.Substances.Kind; k != yaml.MappingNode && k != yaml.SequenceNode {
			return invalidf("substances must be a mapping or a list of names")
		}
	case ModelUNIQUAC:
		u := c.UNIQUAC
		n := len(u.R)
		if n == 0 || len(u.Q) != n || len(u.Tau) != n {
			return invalidf("uniquac: %d r, %d q, %d tau rows", n, len(u.Q), len(u.Tau))
		}
		if len(u.Names) != 0 && len(u.Names) != n {
			return invalidf("uniquac: %d names for %d components", len(u.Names), n)
		}
		for i, row := range u.Tau {
			if len(row) != n {
				return invalidf("uniquac: tau row %d has %d entries", i, len(row))
			}
			for j, p := range row {
				if len(p) != 2 {
					return invalidf("uniquac: tau[%d][%d] needs 2 coefficients", i, j)
				}
			}
		}
	default:
		return invalidf("unknown model %q", c.Model)
	}

	n := c.Components()
	if n == 0 {
		return invalidf("no components")
	}
	if (c.Model == ModelWeight || c.Model == ModelFreeVolume) && len(c.MolarMasses) != n {
		return invalidf("model %s needs %d molar masses, got %d", c.Model, n, len(c.MolarMasses))
	}
	if !(c.Temperature > 0) {
		return invalidf("temperature %g", c.Temperature)
	}
	if len(c.Composition) != 0 && len(c.Composition) != n {
		return invalidf("composition has %d entries for %d components", len(c.Composition), n)
	}
	if c.SumTolerance < 0 {
		return invalidf("sum_tolerance %g", c.SumTolerance)
	}
	if c.Plot.Output != "" {
		if n != 2 {
			return invalidf("plot needs a binary mixture, have %d components", n)
		}
		if c.Plot.Steps < 1 {
			return invalidf("plot steps %d", c.Plot.Steps)
		}
	}

	return nil
}

// Table returns the configured parameter table: a builtin dataset when the
// name matches one, the file at that path otherwise.
func (c *Config) Table() (*unifac.ParameterTable, error) {
	t, err := datasets.Lookup(c.Dataset)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, datasets.ErrUnknownDataset) {
		return nil, err
	}

	return unifac.ParseFile(c.Dataset)
}

// Registry returns the configured substances in document order.
func (c *Config) Registry() (*unifac.Registry, error) {
	switch c.Substances.Kind {
	case yaml.MappingNode:
		reg := unifac.NewRegistry()
		if err := reg.AddNode(&c.Substances); err != nil {
			return nil, err
		}
		return reg, nil
	case yaml.SequenceNode:
		names := make([]string, len(c.Substances.Content))
		for i, n := range c.Substances.Content {
			names[i] = n.Value
		}
		return datasets.Substances(names...)
	}

	return nil, invalidf("no substances")
}

// Names returns the component names in model order.
func (c *Config) Names() []string {
	if c.Model == ModelUNIQUAC {
		if len(c.UNIQUAC.Names) != 0 {
			return append([]string(nil), c.UNIQUAC.Names...)
		}
		out := make([]string, len(c.UNIQUAC.R))
		for i := range out {
			out[i] = fmt.Sprintf("c%d", i+1)
		}
		return out
	}
	reg, err := c.Registry()
	if err != nil {
		return nil
	}

	return reg.Names()
}

// Tau converts the configured tau matrix to uniquac coefficients.
// Call Validate first.
func (c *Config) Tau() [][]uniquac.Tau {
	out := make([][]uniquac.Tau, len(c.UNIQUAC.Tau))
	for i, row := range c.UNIQUAC.Tau {
		out[i] = make([]uniquac.Tau, len(row))
		for j, p := range row {
			out[i][j] = uniquac.Tau{p[0], p[1]}
		}
	}

	return out
}
