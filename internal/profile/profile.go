// internal/profile/profile.go
package profile

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"fastqsim/internal/qual"
)

// DB maps preset names to quality-model parameter bundles. A preset with
// Trials==0 inherits the run's -n value.
var DB = map[string]qual.Params{
	"default":  {PLow: 0.25, PHigh: 0.95, DropProb: 0.02, EdgeMin: 0.10, EdgeMax: 0.15},
	"degraded": {PLow: 0.05, PHigh: 0.15, DropProb: 0.80, EdgeMin: 0.40, EdgeMax: 0.60},
}

func Get(name string) (qual.Params, bool) {
	p, ok := DB[name]
	return p, ok
}

// Names returns all preset names, sorted.
func Names() []string {
	names := make([]string, 0, len(DB))
	for name := range DB {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// filePreset is the YAML schema for one custom preset.
type filePreset struct {
	PLow     float64 `yaml:"p_low"`
	PHigh    float64 `yaml:"p_high"`
	DropProb float64 `yaml:"drop_prob"`
	EdgeMin  float64 `yaml:"edge_min"`
	EdgeMax  float64 `yaml:"edge_max"`
	Trials   int     `yaml:"n"`
}

// LoadFile merges presets from a YAML file into DB. File entries may
// shadow built-ins of the same name.
func LoadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var presets map[string]filePreset
	if err := yaml.Unmarshal(raw, &presets); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	for name, fp := range presets {
		DB[name] = qual.Params{
			PLow:     fp.PLow,
			PHigh:    fp.PHigh,
			DropProb: fp.DropProb,
			EdgeMin:  fp.EdgeMin,
			EdgeMax:  fp.EdgeMax,
			Trials:   fp.Trials,
		}
	}
	return nil
}
