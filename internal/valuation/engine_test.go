package valuation

import (
	"math"
	"sync"
	"testing"

	"dcf-valuation/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func appleInputs() model.Inputs {
	return model.Inputs{
		InitialFreeCashFlow: 100_560_000_000,
		GrowthRate:          0.06,
		DiscountRate:        0.08,
		TerminalGrowthRate:  0.025,
		ForecastYears:       5,
	}
}

func TestCompute_ZeroGrowthSingleYear(t *testing.T) {
	res, err := Compute(model.Inputs{
		InitialFreeCashFlow: 1000,
		GrowthRate:          0,
		DiscountRate:        0.1,
		TerminalGrowthRate:  0,
		ForecastYears:       1,
	})
	require.NoError(t, err)
	require.Len(t, res.Projections, 1)

	p := res.Projections[0]
	assert.Equal(t, 1, p.Year)
	assert.InDelta(t, 1000.0, p.ForecastedFCF, 1e-9)
	assert.InDelta(t, 909.0909090909, p.PresentValueOfFCF, 1e-6)
	assert.InDelta(t, 10000.0, res.TerminalValue, 1e-6)
	assert.InDelta(t, 9090.9090909091, res.PresentValueOfTerminalValue, 1e-6)
	assert.InDelta(t, 10000.0, res.TotalIntrinsicValue, 1e-6)
}

func TestCompute_WorkedScenario(t *testing.T) {
	res, err := Compute(appleInputs())
	require.NoError(t, err)
	require.Len(t, res.Projections, 5)

	wantFCF := []float64{
		106_593_600_000,
		112_989_216_000,
		119_768_568_960,
		126_954_683_097.6,
		134_571_964_083.456,
	}
	for i, p := range res.Projections {
		assert.InEpsilon(t, wantFCF[i], p.ForecastedFCF, 1e-12, "year %d", p.Year)
	}

	assert.InEpsilon(t, 2_507_932_057_918.953, res.TerminalValue, 1e-12)
	assert.InEpsilon(t, 1_706_856_417_921.920, res.PresentValueOfTerminalValue, 1e-12)
	assert.InEpsilon(t, 2_182_403_287_929.336, res.TotalIntrinsicValue, 1e-12)
	assert.Greater(t, res.TotalIntrinsicValue, 0.0)
}

func TestCompute_Laws(t *testing.T) {
	cases := []struct {
		name string
		in   model.Inputs
	}{
		{"apple", appleInputs()},
		{"ten years", model.Inputs{InitialFreeCashFlow: 5_000, GrowthRate: 0.12, DiscountRate: 0.09, TerminalGrowthRate: 0.02, ForecastYears: 10}},
		{"shrinking", model.Inputs{InitialFreeCashFlow: 250, GrowthRate: -0.04, DiscountRate: 0.07, TerminalGrowthRate: 0.01, ForecastYears: 7}},
		{"long horizon", model.Inputs{InitialFreeCashFlow: 1, GrowthRate: 0.03, DiscountRate: 0.1, TerminalGrowthRate: 0.03, ForecastYears: 100}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := tc.in
			res, err := Compute(in)
			require.NoError(t, err)
			require.Len(t, res.Projections, in.ForecastYears)

			for i, p := range res.Projections {
				// Years are exactly 1..n.
				assert.Equal(t, i+1, p.Year)

				// Discount law.
				wantPV := p.ForecastedFCF / math.Pow(1+in.DiscountRate, float64(p.Year))
				assert.InEpsilon(t, wantPV, p.PresentValueOfFCF, 1e-12)

				// Growth law.
				if i == 0 {
					assert.InEpsilon(t, in.InitialFreeCashFlow*(1+in.GrowthRate), p.ForecastedFCF, 1e-12)
				} else {
					ratio := p.ForecastedFCF / res.Projections[i-1].ForecastedFCF
					assert.InDelta(t, 1+in.GrowthRate, ratio, 1e-9)
				}
			}

			last := res.Projections[len(res.Projections)-1].ForecastedFCF
			wantTV := last * (1 + in.TerminalGrowthRate) / (in.DiscountRate - in.TerminalGrowthRate)
			assert.InEpsilon(t, wantTV, res.TerminalValue, 1e-12)
			assert.InEpsilon(t, wantTV/math.Pow(1+in.DiscountRate, float64(in.ForecastYears)), res.PresentValueOfTerminalValue, 1e-12)

			wantTotal := floats.Sum(res.PresentValues()) + res.PresentValueOfTerminalValue
			assert.InEpsilon(t, wantTotal, res.TotalIntrinsicValue, 1e-12)
		})
	}
}

func TestCompute_Deterministic(t *testing.T) {
	first, err := Compute(appleInputs())
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := Compute(appleInputs())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestCompute_ConcurrentCallers(t *testing.T) {
	want, err := Compute(appleInputs())
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*Result, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := Compute(appleInputs())
			if err == nil {
				results[i] = res
			}
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestCompute_InvalidForecastYears(t *testing.T) {
	for _, years := range []int{0, -1, -10} {
		in := appleInputs()
		in.ForecastYears = years

		res, err := Compute(in)
		assert.Nil(t, res, "no partial output for years=%d", years)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		assert.NotErrorIs(t, err, model.ErrArithmeticSingularity)
	}
}

func TestCompute_Singularity(t *testing.T) {
	in := appleInputs()
	in.TerminalGrowthRate = in.DiscountRate

	res, err := Compute(in)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, model.ErrArithmeticSingularity)
	assert.Contains(t, err.Error(), "terminal value undefined")
}

func TestCompute_DiscountBelowTerminalGrowth(t *testing.T) {
	in := appleInputs()
	in.DiscountRate = 0.02
	in.TerminalGrowthRate = 0.03

	res, err := Compute(in)
	require.NoError(t, err)
	assert.Less(t, res.TerminalValue, 0.0)
	assert.NotEmpty(t, in.Warnings())
}

func TestCompute_NonFinitePropagates(t *testing.T) {
	in := appleInputs()
	in.GrowthRate = math.NaN()

	res, err := Compute(in)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(res.Projections[0].ForecastedFCF))
	assert.True(t, math.IsNaN(res.TotalIntrinsicValue))

	in = appleInputs()
	in.InitialFreeCashFlow = math.Inf(1)
	res, err = Compute(in)
	require.NoError(t, err)
	assert.True(t, math.IsInf(res.TerminalValue, 1))
	assert.True(t, math.IsInf(res.TotalIntrinsicValue, 1))
}
