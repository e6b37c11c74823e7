package handler

import (
	"html/template"

	"sunday-pay/internal/form"
	"sunday-pay/internal/format"
	"sunday-pay/internal/model"
)

type bandOption struct {
	Name   string
	Points []string
}

type pageData struct {
	Values     form.Values
	Bands      []bandOption
	Errors     []string
	Messages   []model.CalculationMessage
	Inputs     *model.ComparisonInputs
	Comparison *model.Comparison
	Breakdown  *model.Breakdown
	Staffing   model.Staffing
}

var pageFuncs = template.FuncMap{
	"money":   format.Money,
	"change":  format.Change,
	"percent": format.Percent,
	"number":  format.Number,
}

// Every control resubmits the form on change, so results always reflect the
// current inputs.
const pageHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Sunday Pay Impact (Illustrative Calculator)</title>
  <style>
    body { font-family: system-ui, sans-serif; margin: 0; color: #1f2933; }
    main { display: grid; grid-template-columns: 320px 1fr; gap: 32px; padding: 24px; }
    @media (max-width: 760px) { main { grid-template-columns: 1fr; } }
    fieldset { border: 1px solid #d9e2ec; margin-bottom: 16px; }
    label { display: block; margin: 6px 0; font-size: 14px; }
    input[type=text] { width: 100%; box-sizing: border-box; }
    table { border-collapse: collapse; width: 100%; margin-bottom: 16px; }
    th, td { padding: 4px 8px; border-bottom: 1px solid #e4e7eb; text-align: right; }
    th:first-child, td:first-child { text-align: left; }
    .pos { color: #0b7a3e; } .neg { color: #b42318; }
    .error { color: #b42318; } .warning { color: #8d6708; }
    .caption { font-size: 13px; color: #52606d; padding: 0 24px; }
  </style>
</head>
<body>
<h1 style="padding: 0 24px">Sunday Pay Impact (Illustrative Calculator)</h1>
<p class="caption">Illustrative only. Simplified tax, NI and pension assumptions cannot reflect individual circumstances.</p>
<main>
<form method="get" action="/">
  <input type="hidden" name="submitted" value="1">
  <fieldset><legend>Your details</legend>
    <label>Band
      <select name="band" onchange="this.form.submit()">
        <option value="">(enter hourly rate)</option>
        {{range .Bands}}<option value="{{.Name}}"{{if eq .Name ($.Values.Get "band")}} selected{{end}}>{{.Name}}</option>{{end}}
      </select>
    </label>
    <label>Pay point
      <select name="pay_point" onchange="this.form.submit()">
        {{range .Bands}}{{if eq .Name ($.Values.Get "band")}}{{range .Points}}<option value="{{.}}"{{if eq . ($.Values.Get "pay_point")}} selected{{end}}>{{.}}</option>{{end}}{{end}}{{end}}
      </select>
    </label>
    <label>Hourly rate (overrides band)
      <input type="text" name="hourly_rate" value="{{.Values.Get "hourly_rate"}}" placeholder="from band" onchange="this.form.submit()">
    </label>
    <label>Contracted hours per week
      <input type="text" name="weekly_hours" value="{{.Values.Get "weekly_hours"}}" onchange="this.form.submit()">
    </label>
    <label>Sundays worked per month
      <input type="text" name="num_sundays" value="{{.Values.Get "num_sundays"}}" onchange="this.form.submit()">
    </label>
  </fieldset>
  <fieldset><legend>Current scheme: bank Sundays</legend>
    <label><input type="checkbox" name="bank_opt_in"{{if .Values.Checked "bank_opt_in"}} checked{{end}} onchange="this.form.submit()"> I opt in to bank Sundays</label>
    <label>Hours claimed per bank Sunday
      <input type="text" name="bank_sunday_hours" value="{{.Values.Get "bank_sunday_hours"}}" onchange="this.form.submit()">
    </label>
    <label>Bank rate per hour (blank = band rate)
      <input type="text" name="bank_rate" value="{{.Values.Get "bank_rate"}}" onchange="this.form.submit()">
    </label>
  </fieldset>
  <fieldset><legend>Deductions</legend>
    <label>Model
      <select name="deduction_model" onchange="this.form.submit()">
        <option value="flat"{{if eq (.Values.Get "deduction_model") "flat"}} selected{{end}}>Flat percentages</option>
        <option value="uk"{{if eq (.Values.Get "deduction_model") "uk"}} selected{{end}}>Simplified UK tax/NI</option>
      </select>
    </label>
    <label>Tax %<input type="text" name="tax" value="{{.Values.Get "tax"}}" onchange="this.form.submit()"></label>
    <label>NI %<input type="text" name="ni" value="{{.Values.Get "ni"}}" onchange="this.form.submit()"></label>
    <label>Pension %<input type="text" name="pension" value="{{.Values.Get "pension"}}" onchange="this.form.submit()"></label>
    <label>Pension rate % (UK model)<input type="text" name="pension_rate" value="{{.Values.Get "pension_rate"}}" onchange="this.form.submit()"></label>
    <label><input type="checkbox" name="include_leave_uplift"{{if .Values.Checked "include_leave_uplift"}} checked{{end}} onchange="this.form.submit()"> Include annual leave uplift (UK model)</label>
    <label>Annual leave weeks<input type="text" name="annual_leave_weeks" value="{{.Values.Get "annual_leave_weeks"}}" onchange="this.form.submit()"></label>
  </fieldset>
  <noscript><button type="submit">Calculate</button></noscript>
</form>
<section>
  {{range .Errors}}<p class="error">{{.}}</p>{{end}}
  {{range .Messages}}<p class="{{if eq .Level "CRITICAL"}}error{{else}}warning{{end}}">{{.Message}}</p>{{end}}
  {{with .Comparison}}
  <h2>Summary (monthly)</h2>
  <table>
    <tr><th>Line</th><th>Current</th><th>New</th><th>Change</th></tr>
    <tr><td>Base pay</td><td>{{money .BasePay}}</td><td>{{money .BasePay}}</td><td>{{change (.BasePay.Sub .BasePay)}}</td></tr>
    <tr><td>Sunday pay</td><td>{{money .CurrentSundayPay}}</td><td>{{money .NewSundayPay}}</td><td>{{change (.NewSundayPay.Sub .CurrentSundayPay)}}</td></tr>
    <tr><td>Gross</td><td>{{money .CurrentGross}}</td><td>{{money .NewGross}}</td><td>{{change (.NewGross.Sub .CurrentGross)}}</td></tr>
    <tr><th>After flat deductions</th><th>{{money .CurrentSchemePay}}</th><th>{{money .NewSchemePay}}</th><th class="{{if .Difference.IsNegative}}neg{{else}}pos{{end}}">{{change .Difference}}</th></tr>
  </table>
  {{end}}
  {{with .Breakdown}}
  <h2>Simplified UK take-home (monthly)</h2>
  <table>
    <tr><th>Line</th><th>Current</th><th>New</th><th>Change</th></tr>
    {{range .Monthly}}<tr><td>{{.Label}}</td><td>{{money .Current}}</td><td>{{money .New}}</td><td>{{change .Change}}</td></tr>{{end}}
  </table>
  <h2>Annual</h2>
  <table>
    <tr><th>Item</th><th>Current</th><th>New</th><th>Change</th></tr>
    {{range .Annual}}<tr><td>{{.Label}}</td><td>{{money .Current}}</td><td>{{money .New}}</td><td>{{change .Change}}</td></tr>{{end}}
  </table>
  {{end}}
  {{with .Inputs}}
  <h2>Inputs at a glance</h2>
  <ul>
    {{if .Band}}<li>{{.Band}} / {{.PayPoint}}</li>{{end}}
    <li>Hourly rate: £{{number .HourlyRate}}, bank rate: £{{number .BankRate}}</li>
    <li>{{.NumSundays}} Sunday(s) per month; bank opt-in: {{if .BankOptIn}}yes, {{number .BankSundayHours}}h each{{else}}no{{end}}</li>
  </ul>
  {{end}}
  {{with .Staffing}}
  <h2>Fair share (for context)</h2>
  <ul>
    <li>Sundays per month (average): {{number .SundaysPerMonth}}</li>
    <li>Total Sunday shifts per month ({{.StaffRequiredPerSunday}} staff needed): {{number .TotalShiftsPerMonth}}</li>
    <li>Fair share per person ({{.AffectedFTE}} FTE): {{number .FairShare}} Sundays/month</li>
    <li>If ~{{.OptOutEstimate}} opt out entirely: {{number .FairShareIfOptOut}} Sundays/month each</li>
    <li>Extra pool to redistribute: {{number .ExtraPoolPerMonth}} Sundays/month</li>
    <li>Realistic upper bound for one person: {{number .UpperBoundPerPerson}} Sundays/month</li>
  </ul>
  {{end}}
</section>
</main>
</body>
</html>
`
