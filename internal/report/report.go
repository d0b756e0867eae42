// Package report turns a valuation result into the shapes a presentation layer
// renders: a table, a line-chart series and a short text summary.
package report

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"dcf-valuation/internal/valuation"

	"github.com/dustin/go-humanize"
)

const (
	ChartTitle  = "Forecasted Free Cash Flow Over Time"
	ChartXLabel = "Year"
	ChartYLabel = "Free Cash Flow ($)"
)

// Row is one line of the forecast table.
type Row struct {
	Year              int
	ForecastedFCF     float64
	PresentValueOfFCF float64
}

// Point is one (x, y) sample of a chart series.
type Point struct {
	X float64
	Y float64
}

// Chart describes a single-series line chart of forecasted FCF by year.
type Chart struct {
	Title  string
	XLabel string
	YLabel string
	Points []Point
}

// Report bundles everything rendered for one valuation.
type Report struct {
	Table   []Row
	Chart   Chart
	Summary string

	TotalIntrinsicValue         float64
	TerminalValue               float64
	PresentValueOfTerminalValue float64
}

// Build formats res for display. It performs no financial arithmetic.
func Build(res *valuation.Result) Report {
	rows := make([]Row, len(res.Projections))
	for i, p := range res.Projections {
		rows[i] = Row{
			Year:              p.Year,
			ForecastedFCF:     p.ForecastedFCF,
			PresentValueOfFCF: p.PresentValueOfFCF,
		}
	}

	fcfs := res.ForecastedFCFs()
	points := make([]Point, len(fcfs))
	for i, y := range fcfs {
		points[i] = Point{X: float64(res.Projections[i].Year), Y: y}
	}

	return Report{
		Table: rows,
		Chart: Chart{
			Title:  ChartTitle,
			XLabel: ChartXLabel,
			YLabel: ChartYLabel,
			Points: points,
		},
		Summary:                     Summary(res),
		TotalIntrinsicValue:         res.TotalIntrinsicValue,
		TerminalValue:               res.TerminalValue,
		PresentValueOfTerminalValue: res.PresentValueOfTerminalValue,
	}
}

// Summary renders the three headline figures as currency.
func Summary(res *valuation.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total Intrinsic Value Estimate: %s\n", Currency(res.TotalIntrinsicValue))
	fmt.Fprintf(&b, "Terminal Value (undiscounted): %s\n", Currency(res.TerminalValue))
	fmt.Fprintf(&b, "Present Value of Terminal Value: %s\n", Currency(res.PresentValueOfTerminalValue))
	return b.String()
}

// Currency formats x as dollars with thousands separators and two decimals,
// e.g. 1234.5 -> "$1,234.50". Rounding is to the nearest cent of the exact
// binary value, so magnitudes beyond int64 keep every digit. Non-finite
// values render as "$NaN", "$+Inf" and "$-Inf".
func Currency(x float64) string {
	s := strconv.FormatFloat(x, 'f', 2, 64)
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return "$" + s
	}

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	n, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return "$" + sign + s
	}
	return "$" + sign + humanize.BigComma(n) + "." + frac
}
