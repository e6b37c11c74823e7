package model

import "github.com/shopspring/decimal"

type ComparisonResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	CalculationResult   CalculationResult   `json:"calculation_result"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

type CalculationResult struct {
	Messages   []CalculationMessage `json:"messages"`
	Inputs     *ComparisonInputs    `json:"inputs,omitempty"`
	Comparison *Comparison          `json:"comparison,omitempty"`
	Breakdown  *Breakdown           `json:"breakdown,omitempty"`
	Staffing   *Staffing            `json:"staffing,omitempty"`
}

// Comparison is the monthly outcome of both schemes.
type Comparison struct {
	BasePay          decimal.Decimal `json:"base_pay"`
	CurrentSundayPay decimal.Decimal `json:"current_sunday_pay"`
	NewSundayPay     decimal.Decimal `json:"new_sunday_pay"`
	CurrentGross     decimal.Decimal `json:"current_gross"`
	NewGross         decimal.Decimal `json:"new_gross"`
	CurrentSchemePay decimal.Decimal `json:"current_scheme_pay"`
	NewSchemePay     decimal.Decimal `json:"new_scheme_pay"`
	Difference       decimal.Decimal `json:"difference"`
}

// Breakdown is the detailed monthly view under the UK tax model.
type Breakdown struct {
	Monthly []BreakdownLine `json:"monthly"`
	Annual  []BreakdownLine `json:"annual"`
}

type BreakdownLine struct {
	Label   string          `json:"label"`
	Current decimal.Decimal `json:"current"`
	New     decimal.Decimal `json:"new"`
	Change  decimal.Decimal `json:"change"`
}

// Staffing is the fair-share context for Sunday cover.
type Staffing struct {
	StaffRequiredPerSunday int     `json:"staff_required_per_sunday"`
	AffectedFTE            int     `json:"affected_fte"`
	OptOutEstimate         int     `json:"opt_out_estimate"`
	SundaysPerMonth        float64 `json:"sundays_per_month"`
	TotalShiftsPerMonth    float64 `json:"total_shifts_per_month"`
	FairShare              float64 `json:"fair_share"`
	FairShareIfOptOut      float64 `json:"fair_share_if_opt_out"`
	ExtraPoolPerMonth      float64 `json:"extra_pool_per_month"`
	UpperBoundPerPerson    float64 `json:"upper_bound_per_person"`
	DefaultSundays         int     `json:"default_sundays"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
