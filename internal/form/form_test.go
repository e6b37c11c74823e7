package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sunday-pay/internal/config"
)

func TestDefaults(t *testing.T) {
	t.Parallel()

	v := Defaults(config.Default(), 1)

	assert.Equal(t, "Band 6", v.Get(FieldBand))
	assert.Equal(t, "Mid", v.Get(FieldPayPoint))
	assert.Equal(t, "37.5", v.Get(FieldWeeklyHours))
	assert.Equal(t, "1", v.Get(FieldNumSundays))
	assert.Equal(t, "10.5", v.Get(FieldBankSundayHours))
	assert.Equal(t, "10.7", v.Get(FieldPensionRate))
	assert.Equal(t, "0", v.Get(FieldTax))
	assert.True(t, v.Checked(FieldIncludeLeaveUplift))
	assert.False(t, v.Checked(FieldBankOptIn))
}

func TestRequest_ParsesFields(t *testing.T) {
	t.Parallel()

	req, errs := Values{
		FieldHourlyRate:      "£10",
		FieldWeeklyHours:     " 37.5 ",
		FieldNumSundays:      "4",
		FieldBankOptIn:       "on",
		FieldBankRate:        "6",
		FieldBankSundayHours: "12",
		FieldTax:             "20",
		FieldNI:              "8",
		FieldDeductionModel:  "flat",
		FieldPensionRate:     "10.7",
	}.Request()

	require.Empty(t, errs)
	require.NotNil(t, req.HourlyRate)
	assert.Equal(t, 10.0, *req.HourlyRate)
	assert.Equal(t, 37.5, *req.WeeklyHours)
	assert.Equal(t, 4, *req.NumSundays)
	assert.True(t, req.BankOptIn)
	assert.Equal(t, 6.0, *req.BankRate)
	require.NotNil(t, req.Deductions)
	assert.InDelta(t, 0.20, req.Deductions.Tax, 1e-12)
	assert.InDelta(t, 0.08, req.Deductions.NI, 1e-12)
	assert.Zero(t, req.Deductions.Pension)
	assert.InDelta(t, 0.107, *req.PensionRate, 1e-12)
	assert.Equal(t, "flat", req.DeductionModel)
	require.NotNil(t, req.IncludeLeaveUplift)
	assert.False(t, *req.IncludeLeaveUplift)
}

func TestRequest_BlankFieldsUseDefaults(t *testing.T) {
	t.Parallel()

	req, errs := Values{FieldHourlyRate: "  "}.Request()

	require.Empty(t, errs)
	assert.Nil(t, req.HourlyRate)
	assert.Nil(t, req.NumSundays)
	assert.Nil(t, req.Deductions)
}

func TestRequest_NoBandNeedsHourlyRate(t *testing.T) {
	t.Parallel()

	_, errs := Values{FieldBand: "", FieldHourlyRate: ""}.Request()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "enter an hourly rate or choose a band")

	req, errs := Values{FieldBand: "", FieldHourlyRate: "12.5"}.Request()
	require.Empty(t, errs)
	assert.Equal(t, 12.5, *req.HourlyRate)

	_, errs = Values{FieldBand: "Band 6", FieldHourlyRate: ""}.Request()
	assert.Empty(t, errs)
}

func TestRequest_NonNumeric(t *testing.T) {
	t.Parallel()

	req, errs := Values{
		FieldHourlyRate: "ten",
		FieldNumSundays: "1.5",
	}.Request()

	require.Len(t, errs, 2)
	assert.Contains(t, errs[0], FieldHourlyRate)
	assert.Contains(t, errs[1], FieldNumSundays)
	assert.Nil(t, req.HourlyRate)
	assert.Nil(t, req.NumSundays)
}

func TestRequest_BankRateDroppedWhenOptedOut(t *testing.T) {
	t.Parallel()

	req, errs := Values{FieldBankRate: "44.70"}.Request()

	require.Empty(t, errs)
	assert.False(t, req.BankOptIn)
	assert.Nil(t, req.BankRate)
}

func TestChecked(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"on", "TRUE", "yes", "1", "y"} {
		assert.True(t, Values{"x": s}.Checked("x"), s)
	}
	for _, s := range []string{"", "off", "no", "0"} {
		assert.False(t, Values{"x": s}.Checked("x"), s)
	}
}
