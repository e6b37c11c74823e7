package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sunday-pay/internal/model"
)

func ukInputs() model.ComparisonInputs {
	in := baseInputs()
	in.HourlyRate = 21.57
	in.NumSundays = 1
	in.BankSundayHours = 10.5
	in.BankRate = 44.70
	in.BankOptIn = true
	in.DeductionModel = model.DeductionModelUK
	in.PensionRate = 0.107
	in.AnnualLeaveWeeks = 6.5
	in.IncludeLeaveUplift = true
	return in
}

func findLine(t *testing.T, lines []model.BreakdownLine, label string) model.BreakdownLine {
	t.Helper()
	for _, l := range lines {
		if l.Label == label {
			return l
		}
	}
	require.FailNow(t, "missing line", label)
	return model.BreakdownLine{}
}

func TestLeaveUplift(t *testing.T) {
	t.Parallel()

	// 4 Sundays * 72/Sunday * 12 months / 52 weeks * 6.5 weeks / 12 months = 36
	assertDecimal(t, "36", LeaveUplift(10, 4, 6.5, testRates))
	assert.True(t, LeaveUplift(10, 0, 6.5, testRates).IsZero())
	assert.True(t, LeaveUplift(10, 4, 0, testRates).IsZero())
}

func TestBreakdown_LinesAddUp(t *testing.T) {
	t.Parallel()

	b := Breakdown(ukInputs(), testRates)

	require.Len(t, b.Monthly, 8)
	require.Len(t, b.Annual, 5)

	for _, l := range append(b.Monthly, b.Annual...) {
		assert.True(t, l.Change.Equal(l.New.Sub(l.Current)), l.Label)
	}

	base := findLine(t, b.Monthly, "Base pay")
	sunday := findLine(t, b.Monthly, "Sunday pay")
	uplift := findLine(t, b.Monthly, "Annual leave uplift")
	gross := findLine(t, b.Monthly, "Gross total")

	assert.True(t, base.Change.IsZero())
	assert.True(t, uplift.Current.IsZero())
	assert.True(t, gross.New.Equal(base.New.Add(sunday.New).Add(uplift.New)))
	assert.True(t, gross.Current.Equal(base.Current.Add(sunday.Current)))
	// 1 * 10.5 * 44.70
	assertDecimal(t, "469.35", sunday.Current)
}

func TestBreakdown_BankSundaysAreNotPensionable(t *testing.T) {
	t.Parallel()

	in := ukInputs()
	b := Breakdown(in, testRates)

	sunday := findLine(t, b.Monthly, "Sunday pay")
	uplift := findLine(t, b.Monthly, "Annual leave uplift")
	pension := findLine(t, b.Monthly, "Pension deduction")

	assert.True(t, pension.Current.IsZero(), "current pension %s", pension.Current)
	want := sunday.New.Add(uplift.New).Mul(decimal.NewFromFloat(in.PensionRate))
	assert.True(t, pension.New.Equal(want), "want %s, got %s", want, pension.New)
}

func TestBreakdown_BasePayIsNotPensioned(t *testing.T) {
	t.Parallel()

	in := ukInputs()
	in.IncludeLeaveUplift = false
	b := Breakdown(in, testRates)

	pension := findLine(t, b.Monthly, "Pension deduction")
	// 1 Sunday * 12h * 21.57 * 0.60 * 0.107
	assertDecimal(t, "16.617528", pension.New)
}

func TestBreakdown_TakeHomeMatchesComponents(t *testing.T) {
	t.Parallel()

	b := Breakdown(ukInputs(), testRates)

	gross := findLine(t, b.Annual, "Gross")
	tax := findLine(t, b.Annual, "Income tax")
	ni := findLine(t, b.Annual, "Employee NI")
	pension := findLine(t, b.Annual, "Pension")
	takeHome := findLine(t, b.Annual, "Take-home")

	want := gross.New.Sub(pension.New).Sub(tax.New).Sub(ni.New)
	assert.True(t, takeHome.New.Equal(want))
	assert.True(t, takeHome.Current.LessThan(gross.Current))
}

func TestBreakdown_ZeroSundaysNoChange(t *testing.T) {
	t.Parallel()

	in := ukInputs()
	in.NumSundays = 0
	b := Breakdown(in, testRates)

	for _, l := range b.Monthly {
		assert.True(t, l.Change.IsZero(), "%s changed by %s", l.Label, l.Change)
	}
}
