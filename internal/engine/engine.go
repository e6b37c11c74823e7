package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sunday-pay/internal/bands"
	"sunday-pay/internal/calculator"
	"sunday-pay/internal/config"
	"sunday-pay/internal/model"
	"sunday-pay/internal/staffing"
	"sunday-pay/internal/validate"
)

// Engine turns comparison requests into response envelopes. It holds only
// read-only configuration and is safe for concurrent use.
type Engine struct {
	cfg      *config.Config
	bands    *bands.Registry
	staffing model.Staffing
}

func New(cfg *config.Config) (*Engine, error) {
	reg, err := bands.New(cfg.Bands)
	if err != nil {
		return nil, fmt.Errorf("load bands: %w", err)
	}
	return &Engine{
		cfg:      cfg,
		bands:    reg,
		staffing: staffing.Compute(cfg.Staffing),
	}, nil
}

func (e *Engine) Config() *config.Config { return e.cfg }

func (e *Engine) Bands() *bands.Registry { return e.bands }

// Staffing is the fair-share context computed from the configured assumptions.
func (e *Engine) Staffing() model.Staffing { return e.staffing }

func (e *Engine) Process(req *model.ComparisonRequest) *model.ComparisonResponse {
	start := time.Now()

	var allMessages []model.CalculationMessage
	addMessages := func(msgs []model.CalculationMessage) {
		for _, m := range msgs {
			m.ID = len(allMessages)
			allMessages = append(allMessages, m)
		}
	}

	inputs, resolveMsgs := e.Resolve(req)
	addMessages(resolveMsgs)
	if !model.HasCritical(resolveMsgs) {
		addMessages(validate.Inputs(inputs))
	}

	staff := e.staffing
	result := model.CalculationResult{Staffing: &staff}
	outcome := model.OutcomeSuccess

	if model.HasCritical(allMessages) {
		outcome = model.OutcomeFailure
	} else {
		result.Inputs = &inputs
		comparison := calculator.Compare(inputs, e.cfg.Rates)
		result.Comparison = &comparison
		if inputs.DeductionModel == model.DeductionModelUK {
			breakdown := calculator.Breakdown(inputs, e.cfg.Rates)
			result.Breakdown = &breakdown
		}
	}

	if allMessages == nil {
		allMessages = []model.CalculationMessage{}
	}
	result.Messages = allMessages

	elapsed := time.Since(start)
	now := time.Now().UTC()

	return &model.ComparisonResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		CalculationResult: result,
	}
}

// Resolve fills every field the request leaves out: band lookups first,
// then configured defaults. It does not validate ranges.
func (e *Engine) Resolve(req *model.ComparisonRequest) (model.ComparisonInputs, []model.CalculationMessage) {
	var msgs []model.CalculationMessage
	d := e.cfg.Defaults

	in := model.ComparisonInputs{
		Band:               req.Band,
		PayPoint:           req.PayPoint,
		WeeklyHours:        valueOr(req.WeeklyHours, d.WeeklyHours),
		BankSundayHours:    valueOr(req.BankSundayHours, d.BankSundayHours),
		NumSundays:         valueOr(req.NumSundays, e.staffing.DefaultSundays),
		BankOptIn:          req.BankOptIn,
		Deductions:         valueOr(req.Deductions, d.Deductions),
		DeductionModel:     req.DeductionModel,
		IncludeLeaveUplift: valueOr(req.IncludeLeaveUplift, d.IncludeLeaveUplift),
		AnnualLeaveWeeks:   valueOr(req.AnnualLeaveWeeks, d.AnnualLeaveWeeks),
		PensionRate:        valueOr(req.PensionRate, d.PensionRate),
	}
	if in.DeductionModel == "" {
		in.DeductionModel = d.DeductionModel
	}

	if in.Band == "" && req.HourlyRate == nil {
		in.Band = d.Band
	}
	if in.Band != "" && in.PayPoint == "" {
		in.PayPoint = d.PayPoint
	}

	var bandHourly, bandBank float64
	haveBand := false
	if in.Band != "" {
		h, b, err := e.bands.Lookup(in.Band, in.PayPoint)
		switch {
		case err == nil:
			bandHourly, bandBank, haveBand = h, b, true
		case errors.Is(err, bands.ErrUnknownBand):
			msgs = append(msgs, model.CalculationMessage{
				Level:   model.LevelCritical,
				Code:    "UNKNOWN_BAND",
				Message: fmt.Sprintf("Unknown band: %s", in.Band),
			})
		default:
			msgs = append(msgs, model.CalculationMessage{
				Level:   model.LevelCritical,
				Code:    "UNKNOWN_PAY_POINT",
				Message: fmt.Sprintf("Unknown pay point %s for %s", in.PayPoint, in.Band),
			})
		}
	}

	in.HourlyRate = valueOr(req.HourlyRate, bandHourly)

	// Without a band the bank rate defaults to the enhanced Sunday rate. A bad
	// hourly rate is reported on its own field, not again as a bank rate.
	switch {
	case req.BankRate != nil:
		in.BankRate = *req.BankRate
	case haveBand:
		in.BankRate = bandBank
	case in.HourlyRate > 0:
		in.BankRate = in.HourlyRate * (1 + e.cfg.Rates.Enhancement)
	}

	if req.BankRate != nil && !req.BankOptIn {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelWarning,
			Code:    "BANK_RATE_IGNORED",
			Message: "bank_rate has no effect without bank_opt_in",
		})
	}
	if float64(in.NumSundays) > e.staffing.UpperBoundPerPerson {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelWarning,
			Code:    "ABOVE_FAIR_SHARE",
			Message: fmt.Sprintf("%d Sundays is above the realistic upper bound of %.2f per month", in.NumSundays, e.staffing.UpperBoundPerPerson),
		})
	}

	return in, msgs
}

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
