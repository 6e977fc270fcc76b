package usecase

import (
	"math"

	"transfer-booking/internal/data/entity"
)

// Price rules per service category. All three tolerate garbage input:
// non-finite numbers become 0 instead of failing, and results clamp at 0.
// Transfers round to the nearest integer; chauffeur and tour prices round to
// the nearest multiple of 10. The split rounding policy is a business rule
// from the rate cards, not an artifact.

// safeNum maps NaN and ±Inf to 0.
func safeNum(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

func clampNonNegative(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}

func roundToNearest10(x float64) float64 {
	return math.Round(x/10) * 10
}

// CalculateTransferPrice prices a point-to-point transfer. Distance-based
// only; the vehicle base price is intentionally not a factor here.
func CalculateTransferPrice(distanceKm, kmPrice float64, roundTrip bool) entity.Price {
	distanceKm = safeNum(distanceKm)
	kmPrice = safeNum(kmPrice)

	amount := 0.0
	if distanceKm > 0 {
		amount = distanceKm * kmPrice
	}
	if roundTrip {
		amount *= 2
	}

	amount = clampNonNegative(math.Round(amount))
	return entity.MustPrice(amount, entity.CurrencyEUR)
}

// CalculateChauffeurPrice prices an hourly chauffeur hire.
func CalculateChauffeurPrice(hourlyBasePrice, durationHours float64) entity.Price {
	hourlyBasePrice = safeNum(hourlyBasePrice)
	durationHours = safeNum(durationHours)

	amount := clampNonNegative(roundToNearest10(hourlyBasePrice * durationHours))
	return entity.MustPrice(amount, entity.CurrencyEUR)
}

// CalculateTourPrice prices a guided tour per person.
func CalculateTourPrice(perPersonPrice, numberOfPersons float64) entity.Price {
	perPersonPrice = safeNum(perPersonPrice)
	numberOfPersons = safeNum(numberOfPersons)

	amount := clampNonNegative(roundToNearest10(perPersonPrice * numberOfPersons))
	return entity.MustPrice(amount, entity.CurrencyEUR)
}
