package handler

import (
	"html/template"
	"log/slog"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"sunday-pay/internal/engine"
	"sunday-pay/internal/form"
	"sunday-pay/internal/model"
)

type Handler struct {
	engine *engine.Engine
	page   *template.Template
	log    *slog.Logger
}

func New(e *engine.Engine, log *slog.Logger) *Handler {
	return &Handler{
		engine: e,
		page:   template.Must(template.New("page").Funcs(pageFuncs).Parse(pageHTML)),
		log:    log,
	}
}

// Handle routes a request and logs its outcome.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	path := string(ctx.Path())

	switch path {
	case "/":
		h.handleForm(ctx)
	case "/api/v1/compare":
		h.handleCompare(ctx)
	case "/api/v1/bands":
		h.handleBands(ctx)
	case "/api/v1/staffing":
		h.handleStaffing(ctx)
	case "/health":
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found: "+path)
	}

	h.log.Info("request",
		"method", string(ctx.Method()),
		"path", path,
		"status", ctx.Response.StatusCode(),
		"duration", time.Since(start),
	)
}

func (h *Handler) handleCompare(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusBadRequest, "Method not allowed")
		return
	}

	var req model.ComparisonRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp := h.engine.Process(&req)
	if resp.CalculationMetadata.CalculationOutcome == model.OutcomeFailure {
		h.log.Debug("calculation failed", "messages", resp.CalculationResult.Messages)
	}
	writeJSON(ctx, fasthttp.StatusOK, resp)
}

type bandResponse struct {
	Name        string             `json:"name"`
	Points      []string           `json:"points"`
	Rates       map[string]float64 `json:"rates"`
	BankSunRate float64            `json:"bank_sun_rate"`
}

func (h *Handler) handleBands(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		writeError(ctx, fasthttp.StatusBadRequest, "Method not allowed")
		return
	}
	reg := h.engine.Bands()
	out := make([]bandResponse, 0)
	for _, b := range reg.All() {
		out = append(out, bandResponse{
			Name:        b.Name,
			Points:      reg.Points(b.Name),
			Rates:       b.Points,
			BankSunRate: b.BankSunRate,
		})
	}
	writeJSON(ctx, fasthttp.StatusOK, out)
}

func (h *Handler) handleStaffing(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		writeError(ctx, fasthttp.StatusBadRequest, "Method not allowed")
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, h.engine.Staffing())
}

func (h *Handler) handleForm(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		writeError(ctx, fasthttp.StatusBadRequest, "Method not allowed")
		return
	}

	staffing := h.engine.Staffing()
	values := form.Defaults(h.engine.Config(), staffing.DefaultSundays)
	args := ctx.QueryArgs()
	if args.Has("submitted") {
		values = form.Values{}
		args.VisitAll(func(k, v []byte) {
			values[string(k)] = string(v)
		})
	}

	data := pageData{
		Values:   values,
		Bands:    h.bandOptions(),
		Staffing: staffing,
	}

	req, errs := values.Request()
	data.Errors = errs
	if len(errs) == 0 {
		resp := h.engine.Process(req)
		data.Messages = resp.CalculationResult.Messages
		data.Inputs = resp.CalculationResult.Inputs
		data.Comparison = resp.CalculationResult.Comparison
		data.Breakdown = resp.CalculationResult.Breakdown
	}

	ctx.SetContentType("text/html; charset=utf-8")
	if err := h.page.Execute(ctx, data); err != nil {
		h.log.Error("render form", "error", err)
		ctx.Error("render failed", fasthttp.StatusInternalServerError)
	}
}

func (h *Handler) bandOptions() []bandOption {
	reg := h.engine.Bands()
	names := reg.Names()
	out := make([]bandOption, 0, len(names))
	for _, n := range names {
		out = append(out, bandOption{Name: n, Points: reg.Points(n)})
	}
	return out
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Encode response: "+err.Error())
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	body, _ := json.Marshal(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}
