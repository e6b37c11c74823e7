// Package staffing derives the fair-share context for Sunday cover across
// a staff group.
package staffing

import (
	"math"

	"sunday-pay/internal/model"
)

const monthsPerYear = 12

type Assumptions struct {
	StaffRequiredPerSunday int     `yaml:"staff_required_per_sunday"`
	AffectedFTE            int     `yaml:"affected_fte"`
	OptOutEstimate         int     `yaml:"opt_out_estimate"`
	WeeksPerYear           float64 `yaml:"weeks_per_year"`
}

// Compute returns the monthly fair-share figures. A person cannot work more
// Sundays than a month has on average, which caps the upper bound.
func Compute(a Assumptions) model.Staffing {
	weeks := a.WeeksPerYear
	if weeks <= 0 {
		weeks = 52
	}
	sundays := weeks / monthsPerYear
	total := float64(a.StaffRequiredPerSunday) * sundays

	var fair float64
	if a.AffectedFTE > 0 {
		fair = total / float64(a.AffectedFTE)
	}

	remaining := a.AffectedFTE - a.OptOutEstimate
	if remaining < 1 {
		remaining = 1
	}
	extra := fair * float64(a.OptOutEstimate)

	return model.Staffing{
		StaffRequiredPerSunday: a.StaffRequiredPerSunday,
		AffectedFTE:            a.AffectedFTE,
		OptOutEstimate:         a.OptOutEstimate,
		SundaysPerMonth:        sundays,
		TotalShiftsPerMonth:    total,
		FairShare:              fair,
		FairShareIfOptOut:      total / float64(remaining),
		ExtraPoolPerMonth:      extra,
		UpperBoundPerPerson:    math.Min(sundays, fair+extra),
		DefaultSundays:         int(math.Round(fair)),
	}
}
