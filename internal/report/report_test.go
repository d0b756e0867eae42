package report

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"dcf-valuation/internal/model"
	"dcf-valuation/internal/valuation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1000, "$1,000.00"},
		{909.0909090909, "$909.09"},
		{0.5, "$0.50"},
		{2_182_403_287_929.336, "$2,182,403,287,929.34"},
		{-1234.5, "$-1,234.50"},
		{0.125, "$0.12"},
		{0.375, "$0.38"},
		{1e19, "$10,000,000,000,000,000,000.00"},
		{-1e19, "$-10,000,000,000,000,000,000.00"},
		{2.5e22, "$24,999,999,999,999,997,902,848.00"},
		{math.NaN(), "$NaN"},
		{math.Inf(1), "$+Inf"},
		{math.Inf(-1), "$-Inf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Currency(tt.in), "in=%v", tt.in)
	}
}

func TestSummary_LargeValuesStayPositive(t *testing.T) {
	res, err := valuation.Compute(model.Inputs{
		InitialFreeCashFlow: 100_560_000_000,
		GrowthRate:          0.5,
		DiscountRate:        0.08,
		TerminalGrowthRate:  0.025,
		ForecastYears:       100,
	})
	require.NoError(t, err)
	require.Greater(t, res.TerminalValue, 1e19)

	for _, line := range strings.Split(strings.TrimSpace(Summary(res)), "\n") {
		assert.NotContains(t, line, "$-", line)
		assert.NotContains(t, line, "9,223,372,036,854,775,808", line)
	}
}

func TestBuild(t *testing.T) {
	res, err := valuation.Compute(model.Inputs{
		InitialFreeCashFlow: 100_560_000_000,
		GrowthRate:          0.06,
		DiscountRate:        0.08,
		TerminalGrowthRate:  0.025,
		ForecastYears:       5,
	})
	require.NoError(t, err)

	rep := Build(res)
	require.Len(t, rep.Table, 5)
	require.Len(t, rep.Chart.Points, 5)
	assert.Equal(t, ChartTitle, rep.Chart.Title)

	for i, p := range rep.Chart.Points {
		assert.Equal(t, float64(i+1), p.X)
		assert.Equal(t, res.Projections[i].ForecastedFCF, p.Y)
		assert.Equal(t, res.Projections[i].PresentValueOfFCF, rep.Table[i].PresentValueOfFCF)
	}

	lines := strings.Split(strings.TrimSpace(rep.Summary), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Total Intrinsic Value Estimate: $2,182,403,287,929.34", lines[0])
	assert.Equal(t, "Terminal Value (undiscounted): $2,507,932,057,918.95", lines[1])
	assert.Equal(t, "Present Value of Terminal Value: $1,706,856,417,921.92", lines[2])
}

func TestWriteTable(t *testing.T) {
	rows := []Row{
		{Year: 1, ForecastedFCF: 1000, PresentValueOfFCF: 909.0909},
		{Year: 2, ForecastedFCF: 1000, PresentValueOfFCF: 826.4463},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, rows))

	out := buf.String()
	assert.Contains(t, out, "Forecasted FCF ($)")
	assert.Contains(t, out, "$909.09")
	assert.Contains(t, out, "$826.45")
	assert.Equal(t, 3, strings.Count(out, "\n"))
}
