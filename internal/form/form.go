// Package form converts raw text field values, as typed into the web or
// terminal form, into a comparison request. Percentages are entered as
// whole numbers (20 for 20%).
package form

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"sunday-pay/internal/config"
	"sunday-pay/internal/model"
)

const (
	FieldBand               = "band"
	FieldPayPoint           = "pay_point"
	FieldHourlyRate         = "hourly_rate"
	FieldWeeklyHours        = "weekly_hours"
	FieldNumSundays         = "num_sundays"
	FieldBankOptIn          = "bank_opt_in"
	FieldBankSundayHours    = "bank_sunday_hours"
	FieldBankRate           = "bank_rate"
	FieldTax                = "tax"
	FieldNI                 = "ni"
	FieldPension            = "pension"
	FieldDeductionModel     = "deduction_model"
	FieldIncludeLeaveUplift = "include_leave_uplift"
	FieldAnnualLeaveWeeks   = "annual_leave_weeks"
	FieldPensionRate        = "pension_rate"
)

// Values holds one string per field; a missing or blank field means
// "use the default".
type Values map[string]string

// Defaults prefills a form from configuration and a default Sunday count.
func Defaults(cfg *config.Config, sundays int) Values {
	d := cfg.Defaults
	v := Values{
		FieldBand:             d.Band,
		FieldPayPoint:         d.PayPoint,
		FieldWeeklyHours:      trimFloat(d.WeeklyHours),
		FieldNumSundays:       strconv.Itoa(sundays),
		FieldBankSundayHours:  trimFloat(d.BankSundayHours),
		FieldTax:              trimFloat(d.Deductions.Tax * 100),
		FieldNI:               trimFloat(d.Deductions.NI * 100),
		FieldPension:          trimFloat(d.Deductions.Pension * 100),
		FieldDeductionModel:   d.DeductionModel,
		FieldAnnualLeaveWeeks: trimFloat(d.AnnualLeaveWeeks),
		FieldPensionRate:      trimFloat(d.PensionRate * 100),
	}
	if d.IncludeLeaveUplift {
		v[FieldIncludeLeaveUplift] = "on"
	}
	return v
}

func (v Values) Get(key string) string {
	return strings.TrimSpace(v[key])
}

// Checked reports whether a checkbox-style field is set.
func (v Values) Checked(key string) bool {
	switch strings.ToLower(v.Get(key)) {
	case "on", "true", "yes", "1", "y":
		return true
	}
	return false
}

// Request parses the values. Fields that are not numbers are reported as
// errors and left out of the request; range checks are not done here.
func (v Values) Request() (*model.ComparisonRequest, []string) {
	var errs []string
	num := func(key string, divisor float64) *float64 {
		s := v.Get(key)
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(strings.TrimPrefix(s, "£"), 64)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %q is not a number", key, s))
			return nil
		}
		f /= divisor
		return &f
	}

	req := &model.ComparisonRequest{
		Band:             v.Get(FieldBand),
		PayPoint:         v.Get(FieldPayPoint),
		HourlyRate:       num(FieldHourlyRate, 1),
		WeeklyHours:      num(FieldWeeklyHours, 1),
		BankSundayHours:  num(FieldBankSundayHours, 1),
		BankOptIn:        v.Checked(FieldBankOptIn),
		BankRate:         num(FieldBankRate, 1),
		DeductionModel:   v.Get(FieldDeductionModel),
		AnnualLeaveWeeks: num(FieldAnnualLeaveWeeks, 1),
		PensionRate:      num(FieldPensionRate, 100),
	}

	if s := v.Get(FieldNumSundays); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %q is not a whole number", FieldNumSundays, s))
		} else {
			req.NumSundays = &n
		}
	}

	tax, ni, pension := num(FieldTax, 100), num(FieldNI, 100), num(FieldPension, 100)
	if tax != nil || ni != nil || pension != nil {
		req.Deductions = &model.Deductions{
			Tax:     deref(tax),
			NI:      deref(ni),
			Pension: deref(pension),
		}
	}

	// Picking no band means the rate comes from the hourly field, so it
	// cannot be left to the default band.
	if band, ok := v[FieldBand]; ok && strings.TrimSpace(band) == "" && v.Get(FieldHourlyRate) == "" {
		errs = append(errs, fmt.Sprintf("%s: enter an hourly rate or choose a band", FieldHourlyRate))
	}

	uplift := v.Checked(FieldIncludeLeaveUplift)
	req.IncludeLeaveUplift = &uplift

	// A bank rate only matters when opted in; drop it otherwise so the form
	// does not raise a warning for a prefilled field.
	if !req.BankOptIn {
		req.BankRate = nil
	}

	return req, errs
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// trimFloat prints f without trailing zeros, hiding float noise such as
// 10.700000000000001.
func trimFloat(f float64) string {
	return strconv.FormatFloat(math.Round(f*1e6)/1e6, 'f', -1, 64)
}
