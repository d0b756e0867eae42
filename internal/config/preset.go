package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrPresetNotFound = errors.New("preset not found")

// Preset is a named set of example inputs.
type Preset struct {
	ID          string      `yaml:"-"`
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Inputs      InputConfig `yaml:"inputs"`
}

// AppleID is the built-in preset, always available.
const AppleID = "apple"

// Apple returns the canonical worked example.
func Apple() Preset {
	return Preset{
		ID:          AppleID,
		Name:        "Apple",
		Description: "Apple free cash flow with 6% growth, 8% discount rate and 2.5% terminal growth over 5 years.",
		Inputs: InputConfig{
			InitialFreeCashFlow: ptr(100_560_000_000.0),
			GrowthRate:          ptr(0.06),
			DiscountRate:        ptr(0.08),
			TerminalGrowthRate:  ptr(0.025),
			ForecastYears:       ptr(5),
		},
	}
}

// PresetSet is an immutable, ID-keyed collection of presets.
type PresetSet struct {
	byID map[string]Preset
}

// NewPresetSet builds a set from presets; later entries win on duplicate IDs.
func NewPresetSet(presets ...Preset) *PresetSet {
	s := &PresetSet{byID: make(map[string]Preset, len(presets))}
	for _, p := range presets {
		s.byID[p.ID] = p
	}
	return s
}

// Get looks up a preset by ID.
func (s *PresetSet) Get(id string) (Preset, bool) {
	if s == nil {
		return Preset{}, false
	}
	p, ok := s.byID[id]
	return p, ok
}

// List returns presets sorted by ID.
func (s *PresetSet) List() []Preset {
	if s == nil {
		return nil
	}
	out := make([]Preset, 0, len(s.byID))
	for _, p := range s.byID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type presetFileWrapper struct {
	Preset Preset `yaml:"preset"`
}

// LoadPresets reads every *.yaml file in dir. The built-in Apple preset is
// always included; a file named apple.yaml replaces it. A missing dir is not
// an error.
func LoadPresets(dir string) (*PresetSet, error) {
	presets := []Preset{Apple()}
	if dir == "" {
		return NewPresetSet(presets...), nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return NewPresetSet(presets...), nil
		}
		return nil, fmt.Errorf("read preset dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		p, err := LoadPresetFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		presets = append(presets, p)
	}
	return NewPresetSet(presets...), nil
}

// LoadPresetFile reads one preset; its ID is the file name without extension
// (e.g. "apple.yaml" -> "apple").
func LoadPresetFile(path string) (Preset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, err
	}
	var w presetFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return Preset{}, fmt.Errorf("parse %s: %w", path, err)
	}
	p := w.Preset
	p.ID = strings.TrimSuffix(filepath.Base(path), ".yaml")
	if p.Name == "" {
		p.Name = p.ID
	}
	return p, nil
}

func ptr[T any](v T) *T { return &v }
