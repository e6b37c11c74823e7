package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"sunday-pay/internal/format"
	"sunday-pay/internal/model"
)

// ErrCalculationFailed is returned after the failure messages have been printed.
var ErrCalculationFailed = errors.New("calculation failed")

type compareFlags struct {
	band, point, deductionModel string

	rate, hours, bankHours, bankRate float64
	tax, ni, pension, pensionRate    float64
	leaveWeeks                       float64

	sundays     int
	optIn       bool
	leaveUplift bool
	asJSON      bool
}

func newCompareCommand(a *app, stdout io.Writer) *cobra.Command {
	var f compareFlags

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Print a one-shot comparison",
		Example: `  sundaypay compare --rate 10 --sundays 4
  sundaypay compare --band "Band 7" --point Top --sundays 2 --opt-in --model uk`,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp := a.engine.Process(f.request(cmd))
			if f.asJSON {
				out, err := json.MarshalIndent(resp, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(stdout, string(out))
				if resp.CalculationMetadata.CalculationOutcome == model.OutcomeFailure {
					return ErrCalculationFailed
				}
				return nil
			}
			return printTable(stdout, resp)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.band, "band", "", "Pay band, e.g. \"Band 6\"")
	fl.StringVar(&f.point, "point", "", "Pay point within the band (Entry, Mid, Top)")
	fl.Float64Var(&f.rate, "rate", 0, "Hourly rate (overrides band)")
	fl.Float64Var(&f.hours, "hours", 0, "Contracted hours per week")
	fl.IntVar(&f.sundays, "sundays", 0, "Sundays worked per month")
	fl.BoolVar(&f.optIn, "opt-in", false, "Currently opted in to bank Sundays")
	fl.Float64Var(&f.bankHours, "bank-hours", 0, "Hours claimed per bank Sunday")
	fl.Float64Var(&f.bankRate, "bank-rate", 0, "Bank Sunday hourly rate")
	fl.Float64Var(&f.tax, "tax", 0, "Flat tax deduction, percent")
	fl.Float64Var(&f.ni, "ni", 0, "Flat NI deduction, percent")
	fl.Float64Var(&f.pension, "pension", 0, "Flat pension deduction, percent")
	fl.StringVar(&f.deductionModel, "model", "", "Deduction model: flat or uk")
	fl.Float64Var(&f.pensionRate, "pension-rate", 0, "Pension contribution rate for the uk model, percent")
	fl.BoolVar(&f.leaveUplift, "leave-uplift", true, "Include annual leave uplift in the uk model")
	fl.Float64Var(&f.leaveWeeks, "leave-weeks", 0, "Annual leave weeks per year")
	fl.BoolVar(&f.asJSON, "json", false, "Print the full JSON response")
	return cmd
}

// request sets only the flags the user gave, so everything else falls back
// to configured defaults.
func (f *compareFlags) request(cmd *cobra.Command) *model.ComparisonRequest {
	changed := cmd.Flags().Changed
	req := &model.ComparisonRequest{
		Band:           f.band,
		PayPoint:       f.point,
		BankOptIn:      f.optIn,
		DeductionModel: f.deductionModel,
	}
	if changed("rate") {
		req.HourlyRate = &f.rate
	}
	if changed("hours") {
		req.WeeklyHours = &f.hours
	}
	if changed("sundays") {
		req.NumSundays = &f.sundays
	}
	if changed("bank-hours") {
		req.BankSundayHours = &f.bankHours
	}
	if changed("bank-rate") {
		req.BankRate = &f.bankRate
	}
	if changed("tax") || changed("ni") || changed("pension") {
		req.Deductions = &model.Deductions{Tax: f.tax / 100, NI: f.ni / 100, Pension: f.pension / 100}
	}
	if changed("pension-rate") {
		pr := f.pensionRate / 100
		req.PensionRate = &pr
	}
	if changed("leave-uplift") {
		req.IncludeLeaveUplift = &f.leaveUplift
	}
	if changed("leave-weeks") {
		req.AnnualLeaveWeeks = &f.leaveWeeks
	}
	return req
}

var (
	headStyle = lipgloss.NewStyle().Bold(true)
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("178"))
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
)

func printTable(w io.Writer, resp *model.ComparisonResponse) error {
	res := resp.CalculationResult
	for _, m := range res.Messages {
		style := warnStyle
		if m.Level == model.LevelCritical {
			style = errStyle
		}
		fmt.Fprintln(w, style.Render(fmt.Sprintf("%s: %s", m.Code, m.Message)))
	}
	if resp.CalculationMetadata.CalculationOutcome == model.OutcomeFailure {
		return ErrCalculationFailed
	}

	in := res.Inputs
	desc := fmt.Sprintf("£%s/h, %d Sunday(s)/month", format.Number(in.HourlyRate), in.NumSundays)
	if in.Band != "" {
		desc = in.Band + " / " + in.PayPoint + ", " + desc
	}
	if in.BankOptIn {
		desc += fmt.Sprintf(", bank opt-in at £%s/h for %sh", format.Number(in.BankRate), format.Number(in.BankSundayHours))
	}
	fmt.Fprintln(w, headStyle.Render("Sunday pay comparison (monthly, illustrative)"))
	fmt.Fprintln(w, desc)
	fmt.Fprintln(w)

	c := res.Comparison
	lines := [][4]string{
		{"", "Current", "New", "Change"},
		{"Base pay", format.Money(c.BasePay), format.Money(c.BasePay), format.Change(c.BasePay.Sub(c.BasePay))},
		{"Sunday pay", format.Money(c.CurrentSundayPay), format.Money(c.NewSundayPay), format.Change(c.NewSundayPay.Sub(c.CurrentSundayPay))},
		{"Gross", format.Money(c.CurrentGross), format.Money(c.NewGross), format.Change(c.NewGross.Sub(c.CurrentGross))},
		{"After deductions", format.Money(c.CurrentSchemePay), format.Money(c.NewSchemePay), format.Change(c.Difference)},
	}
	if b := res.Breakdown; b != nil {
		lines = append(lines, [4]string{"", "", "", ""}, [4]string{"UK model", "", "", ""})
		for _, l := range b.Monthly {
			lines = append(lines, [4]string{l.Label, format.Money(l.Current), format.Money(l.New), format.Change(l.Change)})
		}
	}
	for _, l := range lines {
		fmt.Fprintln(w, strings.TrimRight(fmt.Sprintf("%-22s %14s %14s %14s", l[0], l[1], l[2], l[3]), " "))
	}
	return nil
}
