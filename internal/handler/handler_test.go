package handler

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"sunday-pay/internal/config"
	"sunday-pay/internal/engine"
	"sunday-pay/internal/model"
)

func newHandler(t *testing.T) *Handler {
	t.Helper()
	e, err := engine.New(config.Default())
	require.NoError(t, err)
	return New(e, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func do(h *Handler, method, uri, body string) *fasthttp.RequestCtx {
	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(uri)
	if body != "" {
		ctx.Request.Header.SetContentType("application/json")
		ctx.Request.SetBodyString(body)
	}
	h.Handle(&ctx)
	return &ctx
}

func TestCompare(t *testing.T) {
	t.Parallel()

	ctx := do(newHandler(t), fasthttp.MethodPost, "/api/v1/compare",
		`{"hourly_rate": 10, "num_sundays": 4, "bank_opt_in": false}`)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "application/json", string(ctx.Response.Header.ContentType()))

	var resp model.ComparisonResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, model.OutcomeSuccess, resp.CalculationMetadata.CalculationOutcome)
	require.NotNil(t, resp.CalculationResult.Comparison)
	assert.Equal(t, "288", resp.CalculationResult.Comparison.Difference.String())
}

func TestCompare_ValidationFailure(t *testing.T) {
	t.Parallel()

	ctx := do(newHandler(t), fasthttp.MethodPost, "/api/v1/compare", `{"hourly_rate": -3}`)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp model.ComparisonResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, model.OutcomeFailure, resp.CalculationMetadata.CalculationOutcome)
	require.NotEmpty(t, resp.CalculationResult.Messages)
	assert.Equal(t, "INVALID_HOURLY_RATE", resp.CalculationResult.Messages[0].Code)
	assert.Nil(t, resp.CalculationResult.Comparison)
}

func TestCompare_BadRequests(t *testing.T) {
	t.Parallel()

	h := newHandler(t)

	ctx := do(h, fasthttp.MethodGet, "/api/v1/compare", "")
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())

	ctx = do(h, fasthttp.MethodPost, "/api/v1/compare", `{"hourly_rate": "ten"`)
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())

	var errResp model.ErrorResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &errResp))
	assert.Equal(t, fasthttp.StatusBadRequest, errResp.Status)
	assert.Contains(t, errResp.Message, "Invalid request body")
}

func TestBands(t *testing.T) {
	t.Parallel()

	ctx := do(newHandler(t), fasthttp.MethodGet, "/api/v1/bands", "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var out []bandResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &out))
	require.Len(t, out, 2)
	assert.Equal(t, "Band 6", out[0].Name)
	assert.Equal(t, []string{"Entry", "Mid", "Top"}, out[0].Points)
	assert.Equal(t, 44.70, out[0].BankSunRate)
}

func TestStaffing(t *testing.T) {
	t.Parallel()

	ctx := do(newHandler(t), fasthttp.MethodGet, "/api/v1/staffing", "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var s model.Staffing
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &s))
	assert.Equal(t, 22, s.AffectedFTE)
	assert.Equal(t, 1, s.DefaultSundays)
}

func TestHealthAndNotFound(t *testing.T) {
	t.Parallel()

	h := newHandler(t)

	ctx := do(h, fasthttp.MethodGet, "/health", "")
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"status":"ok"}`, string(ctx.Response.Body()))

	ctx = do(h, fasthttp.MethodGet, "/nope", "")
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}

func TestForm_Defaults(t *testing.T) {
	t.Parallel()

	ctx := do(newHandler(t), fasthttp.MethodGet, "/", "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	body := string(ctx.Response.Body())
	assert.Contains(t, body, "Summary (monthly)")
	assert.Contains(t, body, `<option value="Band 6" selected>`)
	assert.Contains(t, body, "Fair share per person (22 FTE)")
}

func TestForm_RecomputesFromQuery(t *testing.T) {
	t.Parallel()

	ctx := do(newHandler(t), fasthttp.MethodGet,
		"/?submitted=1&hourly_rate=10&num_sundays=4&weekly_hours=37.5", "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	body := string(ctx.Response.Body())
	// html/template escapes the plus sign
	assert.Contains(t, body, "&#43;£288.00")
	assert.Contains(t, body, "£1,625.00")
}

func TestForm_ShowsErrors(t *testing.T) {
	t.Parallel()

	h := newHandler(t)

	ctx := do(h, fasthttp.MethodGet, "/?submitted=1&hourly_rate=abc", "")
	body := string(ctx.Response.Body())
	assert.Contains(t, body, "is not a number")
	assert.False(t, strings.Contains(body, "Summary (monthly)"))

	ctx = do(h, fasthttp.MethodGet, "/?submitted=1&hourly_rate=10&num_sundays=9", "")
	body = string(ctx.Response.Body())
	assert.Contains(t, body, "num_sundays must be at most 5")
}
