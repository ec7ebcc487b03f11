package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPrice(t *testing.T) {
	cases := map[string]float64{
		"₦2.5B":   2_500_000_000,
		"₦18.5B":  18_500_000_000,
		"₦25.0B":  25_000_000_000,
		"₦850M":   850_000_000,
		"₦1200":   1200,
		"garbage": 0,
		"":        0,
		"$2.5B":   0,
	}

	for budget, want := range cases {
		assert.Equal(t, want, ExtractPrice(budget), budget)
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "₦2.5B", FormatPrice(2_500_000_000))
	assert.Equal(t, "₦850.0M", FormatPrice(850_000_000))
	assert.Equal(t, "₦12,500", FormatPrice(12_500))
	assert.Equal(t, "₦0", FormatPrice(0))
}
