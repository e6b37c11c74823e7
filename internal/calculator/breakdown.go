package calculator

import (
	"github.com/shopspring/decimal"

	"sunday-pay/internal/model"
	"sunday-pay/internal/taxuk"
)

// LeaveUplift approximates the monthly value of Sunday enhancements being
// paid again during annual leave: the yearly enhancement averaged per week,
// multiplied by the weeks of leave, spread over twelve months.
func LeaveUplift(hourly float64, sundaysPerMonth int, leaveWeeks float64, rates model.Rates) decimal.Decimal {
	if sundaysPerMonth == 0 || leaveWeeks == 0 || rates.WeeksPerYear == 0 {
		return decimal.Zero
	}
	yearly := NewSundayPay(hourly, sundaysPerMonth, rates).Mul(decimal.NewFromInt(monthsPerYear))
	return yearly.Mul(decimal.NewFromFloat(leaveWeeks)).
		Div(decimal.NewFromFloat(rates.WeeksPerYear)).
		Div(decimal.NewFromInt(monthsPerYear))
}

// Breakdown produces the detailed monthly and annual tables under the
// simplified UK tax model. Pension is taken only on the new scheme's
// enhancement and leave uplift: base pay is the same in both columns and
// bank Sunday pay is not pensionable.
func Breakdown(in model.ComparisonInputs, rates model.Rates) model.Breakdown {
	twelve := decimal.NewFromInt(monthsPerYear)
	pensionRate := decimal.NewFromFloat(in.PensionRate)

	base := BasePay(in.HourlyRate, in.WeeklyHours, rates)
	currentSun := CurrentSundayPay(in)
	newSun := NewSundayPay(in.HourlyRate, in.NumSundays, rates)

	uplift := decimal.Zero
	if in.IncludeLeaveUplift {
		uplift = LeaveUplift(in.HourlyRate, in.NumSundays, in.AnnualLeaveWeeks, rates)
	}

	currentGross := base.Add(currentSun)
	newGross := base.Add(newSun).Add(uplift)

	currentPension := decimal.Zero
	newPension := newSun.Add(uplift).Mul(pensionRate)

	currentTax := taxuk.Compute(currentGross.Mul(twelve), currentPension.Mul(twelve))
	newTax := taxuk.Compute(newGross.Mul(twelve), newPension.Mul(twelve))

	currentTakeHome := currentGross.Mul(twelve).Sub(currentPension.Mul(twelve)).
		Sub(currentTax.IncomeTax).Sub(currentTax.EmployeeNI)
	newTakeHome := newGross.Mul(twelve).Sub(newPension.Mul(twelve)).
		Sub(newTax.IncomeTax).Sub(newTax.EmployeeNI)

	monthly := []model.BreakdownLine{
		line("Base pay", base, base),
		line("Sunday pay", currentSun, newSun),
		line("Annual leave uplift", decimal.Zero, uplift),
		line("Gross total", currentGross, newGross),
		line("Pension deduction", currentPension, newPension),
		line("Income tax", currentTax.IncomeTax.Div(twelve), newTax.IncomeTax.Div(twelve)),
		line("Employee NI", currentTax.EmployeeNI.Div(twelve), newTax.EmployeeNI.Div(twelve)),
		line("Take-home", currentTakeHome.Div(twelve), newTakeHome.Div(twelve)),
	}

	annual := []model.BreakdownLine{
		line("Gross", currentGross.Mul(twelve), newGross.Mul(twelve)),
		line("Income tax", currentTax.IncomeTax, newTax.IncomeTax),
		line("Employee NI", currentTax.EmployeeNI, newTax.EmployeeNI),
		line("Pension", currentPension.Mul(twelve), newPension.Mul(twelve)),
		line("Take-home", currentTakeHome, newTakeHome),
	}

	return model.Breakdown{Monthly: monthly, Annual: annual}
}

func line(label string, current, next decimal.Decimal) model.BreakdownLine {
	return model.BreakdownLine{
		Label:   label,
		Current: current,
		New:     next,
		Change:  next.Sub(current),
	}
}
