package valuation

// YearlyProjection is one row of the forecast table.
type YearlyProjection struct {
	Year              int
	ForecastedFCF     float64
	PresentValueOfFCF float64
}

// Result is the full output of a valuation.
// Projections are ordered by year, starting at 1.
type Result struct {
	Projections []YearlyProjection

	TerminalValue               float64
	PresentValueOfTerminalValue float64
	TotalIntrinsicValue         float64
}

// PresentValues returns the discounted cash flow of each forecast year, in year order.
func (r *Result) PresentValues() []float64 {
	out := make([]float64, len(r.Projections))
	for i, p := range r.Projections {
		out[i] = p.PresentValueOfFCF
	}
	return out
}

// ForecastedFCFs returns the undiscounted cash flow of each forecast year, in year order.
func (r *Result) ForecastedFCFs() []float64 {
	out := make([]float64, len(r.Projections))
	for i, p := range r.Projections {
		out[i] = p.ForecastedFCF
	}
	return out
}
