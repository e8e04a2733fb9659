package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"grid-scenarios/internal/analysis"

	"gopkg.in/yaml.v3"
)

// Preset is a named scenario from the dashboard's scenario selector.
type Preset struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	File        string          `json:"file,omitempty"`
	Inputs      analysis.Inputs `json:"inputs"`
}

// Scenario converts the preset into an analysis scenario.
func (p Preset) Scenario() analysis.Scenario {
	return analysis.Scenario{Name: p.Name, Inputs: p.Inputs}
}

// BuiltinPresets are the four scenarios the dashboard ships with.
func BuiltinPresets() []Preset {
	return []Preset{
		{
			ID:          "baseline",
			Name:        "Baseline",
			Description: "No cooking shift and no thermal displacement.",
			Inputs:      analysis.Inputs{CookingShiftPercent: 0, ThermalDisplacement: 0},
		},
		{
			ID:          "tou_pricing",
			Name:        "TOU Pricing",
			Description: "Time-of-use tariff drives cooking away from the peak.",
			Inputs:      analysis.Inputs{CookingShiftPercent: 50, ThermalDisplacement: 20},
		},
		{
			ID:          "vpp_integration",
			Name:        "VPP Integration",
			Description: "BESS and EV flexibility aggregated as a virtual power plant.",
			Inputs:      analysis.Inputs{CookingShiftPercent: 30, ThermalDisplacement: 60},
		},
		{
			ID:          "full_optimization",
			Name:        "Full Optimization",
			Description: "TOU pricing and VPP dispatch combined.",
			Inputs:      analysis.Inputs{CookingShiftPercent: 80, ThermalDisplacement: 80},
		},
	}
}

// ConfigPresetID identifies the scenario taken from a loaded config file.
const ConfigPresetID = "config"

// Preset returns the config's own scenario as a preset so it can be listed and
// compared alongside the shipped ones. path is recorded as the preset file.
func (c *Config) Preset(path string) Preset {
	name := c.Scenario.Name
	if name == "" {
		name = ConfigPresetID
	}
	return Preset{
		ID:          ConfigPresetID,
		Name:        name,
		Description: "Scenario from the loaded config.",
		File:        path,
		Inputs:      c.Scenario.Inputs(),
	}
}

type presetFileWrapper struct {
	Scenario ScenarioConfig `yaml:"scenario"`
	// Description is optional free text shown next to the preset.
	Description string `yaml:"description"`
}

// LoadPreset reads a single preset YAML. The ID is the filename without extension
// (e.g. "5_evening_cooking.yaml" -> "5_evening_cooking").
func LoadPreset(path string) (Preset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, err
	}
	var w presetFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return Preset{}, fmt.Errorf("parse %s: %w", path, err)
	}
	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	name := w.Scenario.Name
	if name == "" {
		name = id
	}
	return Preset{
		ID:          id,
		Name:        name,
		Description: w.Description,
		File:        path,
		Inputs:      w.Scenario.Inputs(),
	}, nil
}

// LoadPresetDir loads every *.yaml preset in dir. Invalid files are logged and skipped;
// a missing directory yields no presets.
func LoadPresetDir(dir string) ([]Preset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var out []Preset
	for _, e := range entries {
		if e.IsDir() || !isYAML(e.Name()) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		p, err := LoadPreset(path)
		if err != nil {
			log.Printf("config: skipping preset %s: %v", path, err)
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Presets returns the builtin presets followed by those found in dir (if any).
// A preset file whose ID matches a builtin replaces it.
func Presets(dir string) ([]Preset, error) {
	all := BuiltinPresets()
	if dir == "" {
		return all, nil
	}
	loaded, err := LoadPresetDir(dir)
	if err != nil {
		return nil, err
	}
	for _, p := range loaded {
		replaced := false
		for i := range all {
			if all[i].ID == p.ID {
				all[i] = p
				replaced = true
				break
			}
		}
		if !replaced {
			all = append(all, p)
		}
	}
	return all, nil
}

// FindPreset looks a preset up by ID or (case-insensitive) name.
func FindPreset(presets []Preset, key string) (Preset, bool) {
	for _, p := range presets {
		if p.ID == key || strings.EqualFold(p.Name, key) {
			return p, true
		}
	}
	return Preset{}, false
}

func isYAML(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}
