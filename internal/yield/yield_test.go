// AngelaMos | 2026
// yield_test.go

package yield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	metrics, err := Compute(7500000, 35000)
	require.NoError(t, err)

	assert.InDelta(t, 420000.0, metrics.AnnualRent, 1e-9)
	assert.InDelta(t, 5.6, metrics.YieldPercent, 1e-9)
	assert.InDelta(t, 17.857142857, metrics.YearsToCoverPrice, 1e-6)
}

func TestComputeRoundsYieldToTwoDecimals(t *testing.T) {
	// 30000*12/6500000*100 = 5.538461...
	metrics, err := Compute(6500000, 30000)
	require.NoError(t, err)

	assert.InDelta(t, 5.54, metrics.YieldPercent, 1e-9)
}

func TestComputeIsDeterministic(t *testing.T) {
	first, err := Compute(1234567, 9876)
	require.NoError(t, err)

	second, err := Compute(1234567, 9876)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeRejectsNonPositiveInputs(t *testing.T) {
	cases := []struct {
		name  string
		price float64
		rent  float64
	}{
		{"zero price", 0, 35000},
		{"zero rent", 7500000, 0},
		{"negative price", -1, 35000},
		{"negative rent", 7500000, -500},
		{"both zero", 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compute(tc.price, tc.rent)
			assert.ErrorIs(t, err, ErrNonPositiveInput)
		})
	}
}

func TestComputeAvoidsIntegerTruncation(t *testing.T) {
	// 12000*12/1000000*100 = 14.4; an integer division would yield 14.
	metrics, err := Compute(1000000, 12000)
	require.NoError(t, err)

	assert.InDelta(t, 14.4, metrics.YieldPercent, 1e-9)
}
