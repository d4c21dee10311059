// File: wavecrest/services/pricing/pricing_test.go
package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wavecrest/models"
)

func TestAddOnsSubtotal(t *testing.T) {
	tests := []struct {
		name string
		sel  models.AddOnSelection
		want int64
	}{
		{"empty selection", models.AddOnSelection{}, 0},
		{"single mat", models.AddOnSelection{FloatingMat: 1}, 2500},
		{"two tubes", models.AddOnSelection{Tube: 2}, 2000},
		{"four toys", models.AddOnSelection{InflatableToy: 4}, 4000},
		{"pet only", models.AddOnSelection{Pet: true}, 2500},
		{
			"everything maxed",
			models.AddOnSelection{FloatingMat: 1, Tube: 2, InflatableToy: 4, Pet: true},
			11000,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddOnsSubtotal(tt.sel))
		})
	}
}

func TestGrandTotal(t *testing.T) {
	t.Run("base plus add-ons, no offer", func(t *testing.T) {
		got := GrandTotal(45000, 2500, models.CombinedOfferSelection{})
		assert.Equal(t, int64(47500), got)
	})

	t.Run("combined offer applies discount", func(t *testing.T) {
		offer := models.CombinedOfferSelection{
			Enabled:                 true,
			ComplementaryOptionName: "Foam Party",
			ComplementaryPrice:      20000,
		}
		// 20000 bounce + 20000 foam - 2500 bundle discount.
		got := GrandTotal(20000, 0, offer)
		assert.Equal(t, int64(37500), got)
	})

	t.Run("disabled offer price is ignored", func(t *testing.T) {
		offer := models.CombinedOfferSelection{ComplementaryPrice: 20000}
		got := GrandTotal(20000, 0, offer)
		assert.Equal(t, int64(20000), got)
	})

	t.Run("negative result clamps to zero", func(t *testing.T) {
		offer := models.CombinedOfferSelection{Enabled: true, ComplementaryPrice: 0}
		got := GrandTotal(1000, 0, offer)
		assert.Equal(t, int64(0), got)
	})
}

func TestAddOnLines(t *testing.T) {
	t.Run("zero quantities produce no lines", func(t *testing.T) {
		assert.Empty(t, AddOnLines(models.AddOnSelection{}))
	})

	t.Run("full selection", func(t *testing.T) {
		lines := AddOnLines(models.AddOnSelection{FloatingMat: 1, Tube: 2, InflatableToy: 3, Pet: true})
		assert.Len(t, lines, 4)
		assert.Equal(t, "Floating Mat", lines[0].Name)
		assert.Equal(t, int64(2500), lines[0].Amount)
		assert.Equal(t, "Towable Tube", lines[1].Name)
		assert.Equal(t, int64(2000), lines[1].Amount)
		assert.Equal(t, "Inflatable Toy", lines[2].Name)
		assert.Equal(t, int64(3000), lines[2].Amount)
		assert.Equal(t, "Pet Aboard", lines[3].Name)
		assert.Equal(t, 1, lines[3].Quantity)
		assert.Equal(t, int64(2500), lines[3].Amount)
	})

	t.Run("line amounts sum to subtotal", func(t *testing.T) {
		sel := models.AddOnSelection{FloatingMat: 1, Tube: 1, Pet: true}
		var sum int64
		for _, line := range AddOnLines(sel) {
			sum += line.Amount
		}
		assert.Equal(t, AddOnsSubtotal(sel), sum)
	})
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$475.00", FormatUSD(47500))
	assert.Equal(t, "$0.00", FormatUSD(0))
	assert.Equal(t, "$0.05", FormatUSD(5))
	assert.Equal(t, "$200.50", FormatUSD(20050))
	assert.Equal(t, "-$25.00", FormatUSD(-2500))
}
