package models

// ValuationRequest represents the request body for running a valuation
type ValuationRequest struct {
	Preset  string           `json:"preset,omitempty"` // optional base inputs, e.g. "apple"
	Inputs  ValuationInputs  `json:"inputs"`
	Options ValuationOptions `json:"options,omitempty"`
}

// ValuationInputs are the five scalar inputs. Any field left out is taken
// from the preset; without a preset all five are required.
type ValuationInputs struct {
	InitialFreeCashFlow *float64 `json:"initial_free_cash_flow,omitempty"`
	GrowthRate          *float64 `json:"growth_rate,omitempty"`          // decimal, 0.06 = 6%
	DiscountRate        *float64 `json:"discount_rate,omitempty"`        // decimal
	TerminalGrowthRate  *float64 `json:"terminal_growth_rate,omitempty"` // decimal
	ForecastYears       *int     `json:"forecast_years,omitempty"`
}

// ValuationOptions contains optional output settings
type ValuationOptions struct {
	IncludeChart bool `json:"include_chart,omitempty"` // default: false
}
