package models

import (
	"math"
	"strconv"
)

// Number is a float64 that encodes NaN and infinities as JSON strings
// ("NaN", "+Inf", "-Inf") instead of failing to marshal.
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

func (n *Number) UnmarshalJSON(b []byte) error {
	switch string(b) {
	case `"NaN"`:
		*n = Number(math.NaN())
		return nil
	case `"+Inf"`:
		*n = Number(math.Inf(1))
		return nil
	case `"-Inf"`:
		*n = Number(math.Inf(-1))
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

// ValuationResponse represents the response from a valuation run
type ValuationResponse struct {
	ID     string          `json:"id,omitempty"`
	Preset string          `json:"preset,omitempty"`
	Inputs EchoedInputs    `json:"inputs"`
	Table  []ProjectionRow `json:"projections"`

	TerminalValue               Number `json:"terminal_value"`
	PresentValueOfTerminalValue Number `json:"present_value_of_terminal_value"`
	TotalIntrinsicValue         Number `json:"total_intrinsic_value"`

	Summary  string   `json:"summary"`
	Chart    *Chart   `json:"chart,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// EchoedInputs are the fully resolved inputs the valuation ran with
type EchoedInputs struct {
	InitialFreeCashFlow Number `json:"initial_free_cash_flow"`
	GrowthRate          Number `json:"growth_rate"`
	DiscountRate        Number `json:"discount_rate"`
	TerminalGrowthRate  Number `json:"terminal_growth_rate"`
	ForecastYears       int    `json:"forecast_years"`
}

// ProjectionRow represents one forecast year
type ProjectionRow struct {
	Year              int    `json:"year"`
	ForecastedFCF     Number `json:"forecasted_fcf"`
	PresentValueOfFCF Number `json:"present_value_of_fcf"`
}

// Chart is a single line series of forecasted FCF by year
type Chart struct {
	Title  string       `json:"title"`
	XLabel string       `json:"x_label"`
	YLabel string       `json:"y_label"`
	Points []ChartPoint `json:"points"`
}

// ChartPoint is one sample of the chart series
type ChartPoint struct {
	X Number `json:"x"`
	Y Number `json:"y"`
}

// PresetInfo represents information about an input preset
type PresetInfo struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Inputs      ValuationInputs `json:"inputs"`
}

// HealthResponse is returned by the health check
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
