package pricing

import "math"

const (
	// earlyReturnFloor is the fraction of the planned charge always billed,
	// however early the return.
	earlyReturnFloor = 0.5
	// lateDailyMultiplier prices extra days past the planned duration.
	lateDailyMultiplier = 1.5
	// cancellationFeeRate is the flat fee retained on cancellation.
	cancellationFeeRate = 0.10
)

// Adjustment is the outcome of re-pricing an order at completion or
// cancellation. DifferenceCents is adjusted minus planned: negative means a
// refund is owed, positive an extra charge.
type Adjustment struct {
	AdjustedAmountCents int64 `json:"adjusted_amount_cents"`
	DifferenceCents     int64 `json:"difference_cents"`
	ChargeableDays      int   `json:"chargeable_days"`
	DailyRateCents      int64 `json:"daily_rate_cents"`
	// Fallback marks a degraded result: the input dates could not be used,
	// so the planned amount was kept unchanged. Logged upstream, never an error.
	Fallback bool `json:"-"`
}

// Direction renders the sign of the adjustment for user-facing messaging.
func (a Adjustment) Direction() string {
	switch {
	case a.DifferenceCents < 0:
		return "refund"
	case a.DifferenceCents > 0:
		return "extra_charge"
	default:
		return "none"
	}
}

// roundCents rounds half-up to the nearest cent.
func roundCents(f float64) int64 {
	return int64(math.Floor(f + 0.5))
}

// AdjustForReturn re-prices an order given the planned duration and the
// actually billed duration.
//
// Early return keeps a floor of half the planned charge; late return bills
// the extra days at 150% of the daily rate; an on-schedule return leaves the
// amount untouched. Pure and idempotent.
func AdjustForReturn(totalCents int64, defaultDays, calculatedDays int) Adjustment {
	if defaultDays < 1 {
		defaultDays = 1
	}
	if calculatedDays < 1 {
		calculatedDays = 1
	}
	dailyRate := float64(totalCents) / float64(defaultDays)

	var adjusted int64
	switch {
	case calculatedDays < defaultDays:
		adjusted = roundCents(math.Max(float64(totalCents)*earlyReturnFloor, float64(calculatedDays)*dailyRate))
	case calculatedDays > defaultDays:
		extra := float64(calculatedDays - defaultDays)
		adjusted = roundCents(float64(totalCents) + extra*dailyRate*lateDailyMultiplier)
	default:
		adjusted = totalCents
	}

	return Adjustment{
		AdjustedAmountCents: adjusted,
		DifferenceCents:     adjusted - totalCents,
		ChargeableDays:      calculatedDays,
		DailyRateCents:      roundCents(dailyRate),
	}
}

// ReturnAdjustment derives the billed duration and applies AdjustForReturn.
// An explicit overrideDays wins over the date-derived duration. When the
// dates cannot be parsed the planned amount is kept as-is and the result is
// flagged as a fallback; re-pricing must never fail a status update.
func ReturnAdjustment(totalCents int64, defaultDays int, startDate, actualReturnDate string, overrideDays int) Adjustment {
	days := overrideDays
	if days <= 0 {
		start, okStart := parseDay(startDate)
		actual, okActual := parseDay(actualReturnDate)
		if !okStart || !okActual || actual.Before(start) {
			return Adjustment{
				AdjustedAmountCents: totalCents,
				DifferenceCents:     0,
				ChargeableDays:      defaultDays,
				Fallback:            true,
			}
		}
		days = int(math.Ceil(actual.Sub(start).Hours() / 24))
		if days < 1 {
			days = 1
		}
	}
	return AdjustForReturn(totalCents, defaultDays, days)
}

// CancellationFee computes the flat fee retained when an order is cancelled.
// Chargeable days reset to zero; the difference is the refund owed.
func CancellationFee(totalCents int64) Adjustment {
	fee := roundCents(float64(totalCents) * cancellationFeeRate)
	return Adjustment{
		AdjustedAmountCents: fee,
		DifferenceCents:     fee - totalCents,
		ChargeableDays:      0,
	}
}
