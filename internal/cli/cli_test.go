package cli

import (
	"bytes"
	"os"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sunday-pay/internal/model"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	{
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(t.TempDir()))
		t.Cleanup(func() { _ = os.Chdir(wd) })
	} // t.Chdir requires Go 1.24
	t.Setenv("SUNDAYPAY_CONFIG", "")
	var out, errOut bytes.Buffer
	cmd := NewRootCommand(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootWithoutTerminalPrintsDefaultComparison(t *testing.T) {
	out, err := run(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Sunday pay comparison (monthly, illustrative)")
	assert.Contains(t, out, "Band 6 / Mid, £21.57/h, 1 Sunday(s)/month")
	assert.Contains(t, out, "After deductions")
}

func TestCompareTable(t *testing.T) {
	out, err := run(t, "compare", "--rate", "10", "--sundays", "4", "--hours", "37.5")
	require.NoError(t, err)
	assert.Contains(t, out, "£10.00/h, 4 Sunday(s)/month")
	assert.Contains(t, out, "£288.00")
	assert.Contains(t, out, "+£288.00")
	assert.Contains(t, out, "£1,625.00")
}

func TestCompareJSON(t *testing.T) {
	out, err := run(t, "compare", "--rate", "10", "--sundays", "4", "--json")
	require.NoError(t, err)

	var resp model.ComparisonResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, model.OutcomeSuccess, resp.CalculationMetadata.CalculationOutcome)
	assert.Equal(t, "288", resp.CalculationResult.Comparison.Difference.String())
}

func TestCompareDeductionPercentages(t *testing.T) {
	out, err := run(t, "compare", "--rate", "10", "--sundays", "4", "--tax", "20", "--ni", "10", "--json")
	require.NoError(t, err)

	var resp model.ComparisonResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "201.6", resp.CalculationResult.Comparison.Difference.String())
}

func TestCompareFailure(t *testing.T) {
	out, err := run(t, "compare", "--band", "Band 9")
	assert.ErrorIs(t, err, ErrCalculationFailed)
	assert.Contains(t, out, "UNKNOWN_BAND")
}

func TestCompareMissingConfigFile(t *testing.T) {
	_, err := run(t, "--config", "missing.yaml", "compare")
	assert.Error(t, err)
}
