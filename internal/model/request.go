package model

// ComparisonRequest is the wire form of a comparison. Optional fields are
// pointers so that an explicit zero can be told apart from "use the default".
type ComparisonRequest struct {
	Band     string `json:"band,omitempty"`
	PayPoint string `json:"pay_point,omitempty"`

	HourlyRate      *float64 `json:"hourly_rate,omitempty"`
	WeeklyHours     *float64 `json:"weekly_hours,omitempty"`
	BankSundayHours *float64 `json:"bank_sunday_hours,omitempty"`
	NumSundays      *int     `json:"num_sundays,omitempty"`
	BankOptIn       bool     `json:"bank_opt_in"`
	BankRate        *float64 `json:"bank_rate,omitempty"`

	Deductions     *Deductions `json:"deductions,omitempty"`
	DeductionModel string      `json:"deduction_model,omitempty"`

	IncludeLeaveUplift *bool    `json:"include_leave_uplift,omitempty"`
	AnnualLeaveWeeks   *float64 `json:"annual_leave_weeks,omitempty"`
	PensionRate        *float64 `json:"pension_rate,omitempty"`
}

const (
	DeductionModelFlat = "flat"
	DeductionModelUK   = "uk"
)
