// Package calculator compares monthly pay under the current (bank Sunday)
// and new (contracted Sunday) schemes. Every function here is pure.
package calculator

import (
	"github.com/shopspring/decimal"

	"sunday-pay/internal/model"
)

const monthsPerYear = 12

// Compare returns both scheme totals for one month and their difference.
// Inputs are assumed to have passed validation.
func Compare(in model.ComparisonInputs, rates model.Rates) model.Comparison {
	base := BasePay(in.HourlyRate, in.WeeklyHours, rates)
	current := CurrentSundayPay(in)
	next := NewSundayPay(in.HourlyRate, in.NumSundays, rates)

	currentGross := base.Add(current)
	newGross := base.Add(next)

	keep := decimal.NewFromInt(1).Sub(in.Deductions.Total())
	currentPay := currentGross.Mul(keep)
	newPay := newGross.Mul(keep)

	return model.Comparison{
		BasePay:          base,
		CurrentSundayPay: current,
		NewSundayPay:     next,
		CurrentGross:     currentGross,
		NewGross:         newGross,
		CurrentSchemePay: currentPay,
		NewSchemePay:     newPay,
		Difference:       newPay.Sub(currentPay),
	}
}

// BasePay is ordinary contracted pay for one month.
func BasePay(hourly, weeklyHours float64, rates model.Rates) decimal.Decimal {
	return decimal.NewFromFloat(hourly).
		Mul(decimal.NewFromFloat(weeklyHours)).
		Mul(decimal.NewFromFloat(rates.WeeksPerYear)).
		Div(decimal.NewFromInt(monthsPerYear))
}

// CurrentSundayPay is the bank Sunday payment; zero unless opted in.
func CurrentSundayPay(in model.ComparisonInputs) decimal.Decimal {
	if !in.BankOptIn {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(in.NumSundays)).
		Mul(decimal.NewFromFloat(in.BankSundayHours)).
		Mul(decimal.NewFromFloat(in.BankRate))
}

// NewSundayPay is the mandatory enhancement paid for contracted Sundays.
func NewSundayPay(hourly float64, sundays int, rates model.Rates) decimal.Decimal {
	return decimal.NewFromInt(int64(sundays)).
		Mul(decimal.NewFromFloat(rates.ContractedSundayHours)).
		Mul(EnhancementRate(hourly, rates))
}

// EnhancementRate is the extra hourly amount paid on a contracted Sunday.
func EnhancementRate(hourly float64, rates model.Rates) decimal.Decimal {
	return decimal.NewFromFloat(hourly).Mul(decimal.NewFromFloat(rates.Enhancement))
}
