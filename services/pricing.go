package services

import (
	"math"

	"github.com/shopspring/decimal"

	"watch-deal-scraper/models"
)

var discountLimit = decimal.RequireFromString("0.8")

// TargetPrice maps a market price (VK) to the highest price worth paying (EK):
//
//	ek = round(0.8 * vk / (1 + 2 * e^(-0.0002 * vk)), 2)
//
// The discount is steep for cheap watches and approaches 20% for expensive
// ones. Negative input is treated as 0. Prices beyond float64 range use the
// limit of the curve, 0.8 * vk.
func TargetPrice(vk decimal.Decimal) decimal.Decimal {
	if vk.IsNegative() {
		vk = decimal.Zero
	}
	v := vk.InexactFloat64()
	ek := 0.8 * v / (1 + 2*math.Exp(-0.0002*v))
	if math.IsInf(ek, 0) || math.IsNaN(ek) {
		return vk.Mul(discountLimit).Round(2)
	}
	return decimal.NewFromFloat(ek).Round(2)
}

// Judge compares the asking price against the EK ceiling.
func Judge(price int, ek decimal.Decimal) models.Verdict {
	return models.Verdict{
		Buy:     decimal.NewFromInt(int64(price)).LessThanOrEqual(ek),
		Price:   price,
		Ceiling: ek,
	}
}
