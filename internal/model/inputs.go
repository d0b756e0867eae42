package model

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidInput is returned when the inputs cannot describe a forecast at all
	// (e.g. a non-positive forecast horizon).
	ErrInvalidInput = errors.New("invalid input")

	// ErrArithmeticSingularity is returned when the capitalization rate
	// (discount rate - terminal growth rate) is zero.
	ErrArithmeticSingularity = errors.New("terminal value undefined when discount rate equals terminal growth rate")
)

// Inputs are the five scalars a valuation is computed from.
// Rates are decimals (0.06 = 6%); cash flow is in currency units.
type Inputs struct {
	InitialFreeCashFlow float64
	GrowthRate          float64
	DiscountRate        float64
	TerminalGrowthRate  float64
	ForecastYears       int
}

// Validate checks only the conditions that make the formula undefined.
// Economically implausible but computable inputs are left to Warnings.
func (in Inputs) Validate() error {
	if in.ForecastYears <= 0 {
		return fmt.Errorf("%w: forecast years must be >= 1, got %d", ErrInvalidInput, in.ForecastYears)
	}
	if in.DiscountRate == in.TerminalGrowthRate {
		return ErrArithmeticSingularity
	}
	return nil
}

// CheckHorizon rejects forecast horizons above maxYears. A maxYears <= 0 disables the check.
func (in Inputs) CheckHorizon(maxYears int) error {
	if maxYears > 0 && in.ForecastYears > maxYears {
		return fmt.Errorf("%w: forecast years must be <= %d, got %d", ErrInvalidInput, maxYears, in.ForecastYears)
	}
	return nil
}

// Warnings lists caller-level concerns about inputs the engine will still compute.
func (in Inputs) Warnings() []string {
	var out []string
	if in.DiscountRate < in.TerminalGrowthRate {
		out = append(out, fmt.Sprintf(
			"discount rate (%g) is below terminal growth rate (%g); terminal value is negative and not meaningful",
			in.DiscountRate, in.TerminalGrowthRate))
	}
	if in.InitialFreeCashFlow <= 0 {
		out = append(out, "initial free cash flow is not positive")
	}
	fields := []struct {
		name string
		v    float64
	}{
		{"initial free cash flow", in.InitialFreeCashFlow},
		{"growth rate", in.GrowthRate},
		{"discount rate", in.DiscountRate},
		{"terminal growth rate", in.TerminalGrowthRate},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			out = append(out, f.name+" is not a finite number")
		}
	}
	return out
}
