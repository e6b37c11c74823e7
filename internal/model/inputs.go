package model

import "github.com/shopspring/decimal"

// ComparisonInputs is a fully resolved set of inputs. Values reaching the
// calculator have passed validation against these tags.
type ComparisonInputs struct {
	Band     string `json:"band,omitempty"`
	PayPoint string `json:"pay_point,omitempty"`

	HourlyRate      float64 `json:"hourly_rate" validate:"gt=0,lte=1000"`
	WeeklyHours     float64 `json:"weekly_hours" validate:"gte=0,lte=60"`
	BankSundayHours float64 `json:"bank_sunday_hours" validate:"gte=0,lte=24"`
	NumSundays      int     `json:"num_sundays" validate:"gte=0,lte=5"`
	BankOptIn       bool    `json:"bank_opt_in"`
	BankRate        float64 `json:"bank_rate" validate:"gte=0,lte=1000"`

	Deductions     Deductions `json:"deductions"`
	DeductionModel string     `json:"deduction_model" validate:"oneof=flat uk"`

	IncludeLeaveUplift bool    `json:"include_leave_uplift"`
	AnnualLeaveWeeks   float64 `json:"annual_leave_weeks" validate:"gte=0,lte=10"`
	PensionRate        float64 `json:"pension_rate" validate:"gte=0,lte=0.5"`
}

// Deductions are flat fractions of gross pay, applied to both schemes alike.
type Deductions struct {
	Tax     float64 `json:"tax" yaml:"tax" validate:"gte=0,lte=1"`
	NI      float64 `json:"ni" yaml:"ni" validate:"gte=0,lte=1"`
	Pension float64 `json:"pension" yaml:"pension" validate:"gte=0,lte=1"`
}

// Total sums the rates in decimal so 0.2 + 0.1 stays 0.3.
func (d Deductions) Total() decimal.Decimal {
	return decimal.NewFromFloat(d.Tax).
		Add(decimal.NewFromFloat(d.NI)).
		Add(decimal.NewFromFloat(d.Pension))
}

// Rates holds the scheme constants. They are illustrative placeholders and
// are always passed in explicitly.
type Rates struct {
	Enhancement           float64 `json:"enhancement" yaml:"enhancement"`
	ContractedSundayHours float64 `json:"contracted_sunday_hours" yaml:"contracted_sunday_hours"`
	WeeksPerYear          float64 `json:"weeks_per_year" yaml:"weeks_per_year"`
}

// Band is one pay band with its hourly pay points and bank Sunday rate.
type Band struct {
	Name        string             `json:"name" yaml:"name"`
	Points      map[string]float64 `json:"points" yaml:"points"`
	BankSunRate float64            `json:"bank_sun_rate" yaml:"bank_sun_rate"`
}
