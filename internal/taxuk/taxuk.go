// Package taxuk is a simplified annual income tax and employee National
// Insurance model for England, Wales and Northern Ireland. It is good enough
// to show direction of travel, not to reproduce a payslip.
package taxuk

import "github.com/shopspring/decimal"

var (
	personalAllowance = decimal.NewFromInt(12_570)
	taperThreshold    = decimal.NewFromInt(100_000)
	taperEnd          = decimal.NewFromInt(125_140)
	basicBand         = decimal.NewFromInt(37_700)

	basicRate      = decimal.RequireFromString("0.20")
	higherRate     = decimal.RequireFromString("0.40")
	additionalRate = decimal.RequireFromString("0.45")

	primaryThreshold      = decimal.NewFromInt(12_570)
	upperEarningsLimit    = decimal.NewFromInt(50_270)
	mainNIRate            = decimal.RequireFromString("0.08")
	aboveUpperLimitNIRate = decimal.RequireFromString("0.02")
)

// Figures is a copy of the thresholds and rates the model uses.
type Figures struct {
	PersonalAllowance     decimal.Decimal
	TaperThreshold        decimal.Decimal
	TaperEnd              decimal.Decimal
	BasicBand             decimal.Decimal
	BasicRate             decimal.Decimal
	HigherRate            decimal.Decimal
	AdditionalRate        decimal.Decimal
	PrimaryThreshold      decimal.Decimal
	UpperEarningsLimit    decimal.Decimal
	MainNIRate            decimal.Decimal
	AboveUpperLimitNIRate decimal.Decimal
}

func Thresholds() Figures {
	return Figures{
		PersonalAllowance:     personalAllowance,
		TaperThreshold:        taperThreshold,
		TaperEnd:              taperEnd,
		BasicBand:             basicBand,
		BasicRate:             basicRate,
		HigherRate:            higherRate,
		AdditionalRate:        additionalRate,
		PrimaryThreshold:      primaryThreshold,
		UpperEarningsLimit:    upperEarningsLimit,
		MainNIRate:            mainNIRate,
		AboveUpperLimitNIRate: aboveUpperLimitNIRate,
	}
}

type Result struct {
	TaxableIncome         decimal.Decimal
	IncomeTax             decimal.Decimal
	EmployeeNI            decimal.Decimal
	PersonalAllowanceUsed decimal.Decimal
}

// Allowance returns the personal allowance after the high-income taper:
// reduced by 1 for every 2 above the threshold, gone by 125,140.
func Allowance(adjustedNetIncome decimal.Decimal) decimal.Decimal {
	if adjustedNetIncome.LessThanOrEqual(taperThreshold) {
		return personalAllowance
	}
	if adjustedNetIncome.GreaterThanOrEqual(taperEnd) {
		return decimal.Zero
	}
	reduction := adjustedNetIncome.Sub(taperThreshold).Div(decimal.NewFromInt(2))
	return decimal.Max(decimal.Zero, personalAllowance.Sub(reduction))
}

// IncomeTax computes annual income tax. Pension contributions reduce
// adjusted net income.
func IncomeTax(annualGross, pension decimal.Decimal) Result {
	adjusted := decimal.Max(decimal.Zero, annualGross.Sub(pension))
	pa := Allowance(adjusted)
	taxable := decimal.Max(decimal.Zero, adjusted.Sub(pa))

	basic := decimal.Min(taxable, basicBand)
	tax := basic.Mul(basicRate)
	remaining := taxable.Sub(basic)

	if remaining.IsPositive() {
		higherCap := decimal.Max(decimal.Zero, taperEnd.Sub(pa).Sub(basicBand))
		higher := decimal.Min(remaining, higherCap)
		tax = tax.Add(higher.Mul(higherRate))
		remaining = remaining.Sub(higher)
	}
	if remaining.IsPositive() {
		tax = tax.Add(remaining.Mul(additionalRate))
	}

	return Result{
		TaxableIncome:         taxable,
		IncomeTax:             tax,
		EmployeeNI:            decimal.Zero,
		PersonalAllowanceUsed: pa,
	}
}

// EmployeeNI computes annualised Class 1 employee contributions on gross pay.
func EmployeeNI(annualGross decimal.Decimal) decimal.Decimal {
	if annualGross.LessThanOrEqual(primaryThreshold) {
		return decimal.Zero
	}
	main := decimal.Min(annualGross, upperEarningsLimit).Sub(primaryThreshold)
	above := decimal.Max(decimal.Zero, annualGross.Sub(upperEarningsLimit))
	return main.Mul(mainNIRate).Add(above.Mul(aboveUpperLimitNIRate))
}

// Compute returns income tax and employee NI together.
func Compute(annualGross, pension decimal.Decimal) Result {
	r := IncomeTax(annualGross, pension)
	r.EmployeeNI = EmployeeNI(decimal.Max(decimal.Zero, annualGross))
	return r
}
