package valuation

import (
	"math"

	"dcf-valuation/internal/model"

	"gonum.org/v1/gonum/floats"
)

// Compute projects free cash flow over the forecast horizon, discounts each year
// and the terminal value back to today, and sums them into an intrinsic value.
//
// It returns model.ErrInvalidInput for a non-positive horizon and
// model.ErrArithmeticSingularity when the discount rate equals the terminal
// growth rate. Every other input, including NaN and infinities, is computed as-is.
func Compute(in model.Inputs) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	n := in.ForecastYears
	projections := make([]YearlyProjection, 0, n)
	for year := 1; year <= n; year++ {
		fcf := in.InitialFreeCashFlow * math.Pow(1+in.GrowthRate, float64(year))
		pv := fcf / math.Pow(1+in.DiscountRate, float64(year))
		projections = append(projections, YearlyProjection{
			Year:              year,
			ForecastedFCF:     fcf,
			PresentValueOfFCF: pv,
		})
	}

	res := &Result{Projections: projections}

	// Gordon growth on the final forecast year's cash flow.
	last := projections[n-1].ForecastedFCF
	res.TerminalValue = last * (1 + in.TerminalGrowthRate) / (in.DiscountRate - in.TerminalGrowthRate)
	res.PresentValueOfTerminalValue = res.TerminalValue / math.Pow(1+in.DiscountRate, float64(n))

	res.TotalIntrinsicValue = floats.Sum(res.PresentValues()) + res.PresentValueOfTerminalValue
	return res, nil
}
