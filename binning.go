package trigpt

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Binning describes a linear axis binning for one kinematic variable.
type Binning struct {
	NBins int     `yaml:"nbins"`
	Low   float64 `yaml:"low"`
	High  float64 `yaml:"high"`
}

// BinningConfig maps variable names ("pt", "eta", ...) to their binning.
// Resolving an unknown name is a configuration error, raised at component
// initialization rather than at fill time.
type BinningConfig map[string]Binning

// Get resolves the binning for a variable name.
func (c BinningConfig) Get(name string) (Binning, error) {
	b, ok := c[name]
	if !ok {
		return Binning{}, fmt.Errorf("no binning defined for variable %q", name)
	}
	if b.NBins <= 0 || b.High <= b.Low {
		return Binning{}, fmt.Errorf("invalid binning for variable %q: %+v", name, b)
	}
	return b, nil
}

// Axis resolves the binning for name into a histogram axis of the same name.
func (c BinningConfig) Axis(name string) (Axis, error) {
	b, err := c.Get(name)
	if err != nil {
		return Axis{}, err
	}
	return Axis{Name: name, NBins: b.NBins, Low: b.Low, High: b.High}, nil
}

// DefaultBinning returns the binning used when no configuration file is
// supplied. The values are illustrative defaults, not calibrated ones.
func DefaultBinning() BinningConfig {
	return BinningConfig{
		"pt":      {NBins: 100, Low: 0, High: 100},
		"eta":     {NBins: 100, Low: -0.8, High: 0.8},
		"phi":     {NBins: 100, Low: 0, High: 2 * math.Pi},
		"zvertex": {NBins: 40, Low: -10, High: 10},
		"energy":  {NBins: 100, Low: 0, High: 100},
	}
}

type binningFile struct {
	Binning BinningConfig `yaml:"binning"`
}

// LoadBinning reads a binning configuration from a YAML file of the form
//
//	binning:
//	  pt: {nbins: 100, low: 0, high: 100}
//
// Variables absent from the file fall back to the defaults.
func LoadBinning(path string) (BinningConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading binning config: %w", err)
	}

	var file binningFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parsing binning config %s: %w", path, err)
	}

	config := DefaultBinning()
	for name, b := range file.Binning {
		config[name] = b
	}
	return config, nil
}
