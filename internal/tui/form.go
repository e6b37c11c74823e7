// Package tui is the interactive terminal form. Every key press recomputes
// the comparison from the current field values.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sunday-pay/internal/engine"
	"sunday-pay/internal/form"
	"sunday-pay/internal/format"
	"sunday-pay/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	captionStyle = lipgloss.NewStyle().Faint(true)
	labelStyle   = lipgloss.NewStyle().Width(26)
	focusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("178"))
	posStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("35")).Bold(true)
	negStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true)
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// field is either free text or a choice cycled with space/left/right.
type field struct {
	key    string
	label  string
	choice bool
	value  string
	input  textinput.Model
}

type Model struct {
	engine *engine.Engine
	fields []field
	focus  int
	resp   *model.ComparisonResponse
	errs   []string
	width  int
}

// Run starts the form full-screen and blocks until the user quits.
func Run(ctx context.Context, e *engine.Engine) error {
	_, err := tea.NewProgram(New(e), tea.WithContext(ctx), tea.WithAltScreen()).Run()
	return err
}

func New(e *engine.Engine) Model {
	v := form.Defaults(e.Config(), e.Staffing().DefaultSundays)

	text := func(key, label, placeholder string) field {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 12
		ti.Width = 12
		ti.Placeholder = placeholder
		ti.SetValue(v.Get(key))
		return field{key: key, label: label, input: ti}
	}
	choice := func(key, label, value string) field {
		return field{key: key, label: label, choice: true, value: value}
	}

	optIn := "no"
	if v.Checked(form.FieldBankOptIn) {
		optIn = "yes"
	}
	uplift := "no"
	if v.Checked(form.FieldIncludeLeaveUplift) {
		uplift = "yes"
	}

	m := Model{
		engine: e,
		fields: []field{
			choice(form.FieldBand, "Band", v.Get(form.FieldBand)),
			choice(form.FieldPayPoint, "Pay point", v.Get(form.FieldPayPoint)),
			text(form.FieldHourlyRate, "Hourly rate (£)", "from band"),
			text(form.FieldWeeklyHours, "Contracted hours/week", ""),
			text(form.FieldNumSundays, "Sundays per month", ""),
			choice(form.FieldBankOptIn, "Bank Sunday opt-in", optIn),
			text(form.FieldBankSundayHours, "Hours per bank Sunday", ""),
			text(form.FieldBankRate, "Bank rate (£/h)", "from band"),
			choice(form.FieldDeductionModel, "Deduction model", v.Get(form.FieldDeductionModel)),
			text(form.FieldTax, "Tax %", "0"),
			text(form.FieldNI, "NI %", "0"),
			text(form.FieldPension, "Pension %", "0"),
			text(form.FieldPensionRate, "Pension rate % (UK)", ""),
			choice(form.FieldIncludeLeaveUplift, "Leave uplift (UK)", uplift),
			text(form.FieldAnnualLeaveWeeks, "Annual leave weeks", ""),
		},
	}
	m.setFocus(0)
	m.recompute()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down", "enter":
			m.setFocus((m.focus + 1) % len(m.fields))
		case "shift+tab", "up":
			m.setFocus((m.focus - 1 + len(m.fields)) % len(m.fields))
		case " ", "right", "l":
			if m.fields[m.focus].choice {
				m.cycle(1)
			} else {
				cmd = m.updateInput(msg)
			}
		case "left", "h":
			if m.fields[m.focus].choice {
				m.cycle(-1)
			} else {
				cmd = m.updateInput(msg)
			}
		default:
			cmd = m.updateInput(msg)
		}
		m.recompute()
	}
	return m, cmd
}

func (m *Model) updateInput(msg tea.Msg) tea.Cmd {
	f := &m.fields[m.focus]
	if f.choice {
		return nil
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

func (m *Model) setFocus(i int) {
	if !m.fields[m.focus].choice {
		m.fields[m.focus].input.Blur()
	}
	m.focus = i
	if !m.fields[i].choice {
		m.fields[i].input.Focus()
	}
}

func (m *Model) cycle(step int) {
	f := &m.fields[m.focus]
	opts := m.options(f.key)
	if len(opts) == 0 {
		return
	}
	idx := 0
	for i, o := range opts {
		if o == f.value {
			idx = i
			break
		}
	}
	f.value = opts[(idx+step+len(opts))%len(opts)]

	// Keep the pay point valid for the newly chosen band.
	if f.key == form.FieldBand {
		pp := m.field(form.FieldPayPoint)
		points := m.options(form.FieldPayPoint)
		if !contains(points, pp.value) {
			pp.value = ""
			if len(points) > 0 {
				pp.value = points[0]
			}
		}
	}
}

func (m *Model) options(key string) []string {
	switch key {
	case form.FieldBand:
		return append([]string{""}, m.engine.Bands().Names()...)
	case form.FieldPayPoint:
		return m.engine.Bands().Points(m.field(form.FieldBand).value)
	case form.FieldDeductionModel:
		return []string{model.DeductionModelFlat, model.DeductionModelUK}
	default:
		return []string{"no", "yes"}
	}
}

func (m *Model) field(key string) *field {
	for i := range m.fields {
		if m.fields[i].key == key {
			return &m.fields[i]
		}
	}
	return nil
}

func (m *Model) values() form.Values {
	v := form.Values{}
	for _, f := range m.fields {
		if f.choice {
			v[f.key] = f.value
		} else {
			v[f.key] = f.input.Value()
		}
	}
	return v
}

func (m *Model) recompute() {
	req, errs := m.values().Request()
	m.errs = errs
	m.resp = nil
	if len(errs) == 0 {
		m.resp = m.engine.Process(req)
	}
}

// Result is the latest calculation, nil while a field is not a number.
func (m Model) Result() *model.ComparisonResponse { return m.resp }

func (m Model) Errors() []string { return m.errs }

func (m Model) Focused() string { return m.fields[m.focus].key }

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Sunday Pay Impact (Illustrative Calculator)"))
	b.WriteString("\n")
	b.WriteString(captionStyle.Render("Illustrative only. tab/shift+tab move, space cycles choices, esc quits."))
	b.WriteString("\n\n")

	left := m.viewFields()
	right := m.viewResults()
	if m.width > 0 && m.width < 90 {
		b.WriteString(left + "\n" + right)
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewFields() string {
	var rows []string
	for i, f := range m.fields {
		label := labelStyle.Render(f.label)
		var val string
		if f.choice {
			shown := f.value
			if shown == "" {
				shown = "(hourly rate)"
			}
			val = "‹ " + shown + " ›"
		} else {
			val = f.input.View()
		}
		if i == m.focus {
			label = focusStyle.Render(labelStyle.Render("› " + f.label))
		}
		rows = append(rows, label+val)
	}
	return panelStyle.Render(strings.Join(rows, "\n"))
}

func (m Model) viewResults() string {
	var rows []string
	for _, e := range m.errs {
		rows = append(rows, errorStyle.Render(e))
	}
	if m.resp == nil {
		return panelStyle.Render(strings.Join(rows, "\n"))
	}

	for _, msg := range m.resp.CalculationResult.Messages {
		style := warnStyle
		if msg.Level == model.LevelCritical {
			style = errorStyle
		}
		rows = append(rows, style.Render(msg.Message))
	}

	if in := m.resp.CalculationResult.Inputs; in != nil {
		rows = append(rows, captionStyle.Render(rateSource(in)))
	}

	if c := m.resp.CalculationResult.Comparison; c != nil {
		rows = append(rows, "", titleStyle.Render("Monthly"))
		rows = append(rows, row("", "Current", "New", "Change"))
		rows = append(rows, row("Base pay", format.Money(c.BasePay), format.Money(c.BasePay), format.Change(c.BasePay.Sub(c.BasePay))))
		rows = append(rows, row("Sunday pay", format.Money(c.CurrentSundayPay), format.Money(c.NewSundayPay), format.Change(c.NewSundayPay.Sub(c.CurrentSundayPay))))
		rows = append(rows, row("Gross", format.Money(c.CurrentGross), format.Money(c.NewGross), format.Change(c.NewGross.Sub(c.CurrentGross))))

		diffStyle := posStyle
		if c.Difference.IsNegative() {
			diffStyle = negStyle
		}
		rows = append(rows, row("After deductions", format.Money(c.CurrentSchemePay), format.Money(c.NewSchemePay), diffStyle.Render(format.Change(c.Difference))))
	}

	if bd := m.resp.CalculationResult.Breakdown; bd != nil {
		rows = append(rows, "", titleStyle.Render("Simplified UK take-home"))
		for _, l := range bd.Monthly {
			rows = append(rows, row(l.Label, format.Money(l.Current), format.Money(l.New), format.Change(l.Change)))
		}
	}

	if s := m.resp.CalculationResult.Staffing; s != nil {
		rows = append(rows, "", captionStyle.Render(fmt.Sprintf(
			"Fair share %.2f Sundays/month (%d FTE, %d per Sunday); realistic maximum %.2f.",
			s.FairShare, s.AffectedFTE, s.StaffRequiredPerSunday, s.UpperBoundPerPerson)))
	}

	return panelStyle.Render(strings.Join(rows, "\n"))
}

// rateSource says where the hourly rate used came from.
func rateSource(in *model.ComparisonInputs) string {
	if in.Band == "" {
		return fmt.Sprintf("Hourly rate £%s (entered)", format.Number(in.HourlyRate))
	}
	return fmt.Sprintf("Hourly rate £%s (%s / %s)", format.Number(in.HourlyRate), in.Band, in.PayPoint)
}

func row(label, current, next, change string) string {
	return fmt.Sprintf("%-22s %12s %12s %12s", label, current, next, change)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
