// Package pricing computes booking totals. All arithmetic is on integer
// cents; floating point appears only in display formatting.
package pricing

import (
	"fmt"

	"go.uber.org/zap"

	"wavecrest/models"
)

// AddOnsSubtotal returns the combined price of the selected pontoon
// add-ons in cents. Always >= 0.
func AddOnsSubtotal(sel models.AddOnSelection) int64 {
	total := int64(sel.FloatingMat)*models.FloatingMatPrice +
		int64(sel.Tube)*models.TubePrice +
		int64(sel.InflatableToy)*models.InflatableToyPrice
	if sel.Pet {
		total += models.PetFee
	}
	return total
}

// GrandTotal returns the booking total in cents. When the combined offer
// is enabled the complementary price is added and the flat bundle
// discount subtracted. The discount can never exceed the combined prices
// under catalog pricing; a negative result is clamped to zero and logged.
func GrandTotal(basePrice, addOnsSubtotal int64, offer models.CombinedOfferSelection) int64 {
	total := basePrice + addOnsSubtotal
	if offer.Enabled {
		total += offer.ComplementaryPrice - models.CombinedOfferDiscount
	}
	if total < 0 {
		zap.L().Warn("grand total computed negative, clamping to zero",
			zap.Int64("basePrice", basePrice),
			zap.Int64("addOnsSubtotal", addOnsSubtotal),
			zap.Int64("offerPrice", offer.ComplementaryPrice))
		return 0
	}
	return total
}

// AddOnLines expands a selection into priced summary lines, skipping
// zero-quantity entries.
func AddOnLines(sel models.AddOnSelection) []models.AddOnLine {
	var lines []models.AddOnLine
	if sel.FloatingMat > 0 {
		lines = append(lines, models.AddOnLine{
			Name:     "Floating Mat",
			Quantity: sel.FloatingMat,
			Amount:   int64(sel.FloatingMat) * models.FloatingMatPrice,
		})
	}
	if sel.Tube > 0 {
		lines = append(lines, models.AddOnLine{
			Name:     "Towable Tube",
			Quantity: sel.Tube,
			Amount:   int64(sel.Tube) * models.TubePrice,
		})
	}
	if sel.InflatableToy > 0 {
		lines = append(lines, models.AddOnLine{
			Name:     "Inflatable Toy",
			Quantity: sel.InflatableToy,
			Amount:   int64(sel.InflatableToy) * models.InflatableToyPrice,
		})
	}
	if sel.Pet {
		lines = append(lines, models.AddOnLine{
			Name:     "Pet Aboard",
			Quantity: 1,
			Amount:   models.PetFee,
		})
	}
	return lines
}

// FormatUSD renders cents as a dollar string, e.g. 47500 -> "$475.00".
// This is the only place totals meet division by 100.
func FormatUSD(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
