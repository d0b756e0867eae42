package config

import (
	"fmt"
	"os"
	"strings"

	"dcf-valuation/internal/model"

	"gopkg.in/yaml.v3"
)

// InputConfig is the YAML/flag shape of valuation inputs. Fields are pointers
// so an explicit zero (e.g. growth_rate: 0) can be told apart from "not set".
type InputConfig struct {
	InitialFreeCashFlow *float64 `yaml:"initial_free_cash_flow"`
	GrowthRate          *float64 `yaml:"growth_rate"`
	DiscountRate        *float64 `yaml:"discount_rate"`
	TerminalGrowthRate  *float64 `yaml:"terminal_growth_rate"`
	ForecastYears       *int     `yaml:"forecast_years"`
}

// InputFile is a standalone valuation input file. If Preset is set, the
// preset supplies the base values and Inputs overrides them.
type InputFile struct {
	Preset string      `yaml:"preset"`
	Inputs InputConfig `yaml:"inputs"`
}

// LoadInputFile reads an input file and resolves its preset against presets.
func LoadInputFile(path string, presets *PresetSet) (InputConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return InputConfig{}, err
	}
	var f InputFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return InputConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if f.Preset == "" {
		return f.Inputs, nil
	}
	p, ok := presets.Get(f.Preset)
	if !ok {
		return InputConfig{}, fmt.Errorf("%s: %w: %q", path, ErrPresetNotFound, f.Preset)
	}
	return MergeInputs(p.Inputs, f.Inputs), nil
}

// MergeInputs overlays the fields set in override onto base.
func MergeInputs(base, override InputConfig) InputConfig {
	out := base
	if override.InitialFreeCashFlow != nil {
		out.InitialFreeCashFlow = override.InitialFreeCashFlow
	}
	if override.GrowthRate != nil {
		out.GrowthRate = override.GrowthRate
	}
	if override.DiscountRate != nil {
		out.DiscountRate = override.DiscountRate
	}
	if override.TerminalGrowthRate != nil {
		out.TerminalGrowthRate = override.TerminalGrowthRate
	}
	if override.ForecastYears != nil {
		out.ForecastYears = override.ForecastYears
	}
	return out
}

// ToModelInputs requires every field to be set.
func (c InputConfig) ToModelInputs() (model.Inputs, error) {
	var missing []string
	if c.InitialFreeCashFlow == nil {
		missing = append(missing, "initial_free_cash_flow")
	}
	if c.GrowthRate == nil {
		missing = append(missing, "growth_rate")
	}
	if c.DiscountRate == nil {
		missing = append(missing, "discount_rate")
	}
	if c.TerminalGrowthRate == nil {
		missing = append(missing, "terminal_growth_rate")
	}
	if c.ForecastYears == nil {
		missing = append(missing, "forecast_years")
	}
	if len(missing) > 0 {
		return model.Inputs{}, fmt.Errorf("%w: missing %s", model.ErrInvalidInput, strings.Join(missing, ", "))
	}
	return model.Inputs{
		InitialFreeCashFlow: *c.InitialFreeCashFlow,
		GrowthRate:          *c.GrowthRate,
		DiscountRate:        *c.DiscountRate,
		TerminalGrowthRate:  *c.TerminalGrowthRate,
		ForecastYears:       *c.ForecastYears,
	}, nil
}

// FromModelInputs is the inverse of ToModelInputs.
func FromModelInputs(in model.Inputs) InputConfig {
	return InputConfig{
		InitialFreeCashFlow: &in.InitialFreeCashFlow,
		GrowthRate:          &in.GrowthRate,
		DiscountRate:        &in.DiscountRate,
		TerminalGrowthRate:  &in.TerminalGrowthRate,
		ForecastYears:       &in.ForecastYears,
	}
}
