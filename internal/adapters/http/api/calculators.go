package api

import (
	"net/http"
	"strings"

	"github.com/okian/tradecalc/internal/domain/costofliving"
	"github.com/okian/tradecalc/internal/domain/handoff"
	"github.com/okian/tradecalc/internal/domain/salary"
	"github.com/okian/tradecalc/internal/domain/travel"
	"github.com/okian/tradecalc/pkg/metrics"
)

// CalculatorHandler serves the salary, cost-of-living and travel calculators.
type CalculatorHandler struct {
	deps Calculators
	body bodyReader
}

// NewCalculatorHandler creates a new calculator handler.
func NewCalculatorHandler(deps Calculators, body bodyReader) *CalculatorHandler {
	return &CalculatorHandler{deps: deps, body: body}
}

// HandleSalaryForm handles GET /api/v1/salary, prefilling the trade from the query.
func (h *CalculatorHandler) HandleSalaryForm(w http.ResponseWriter, r *http.Request) {
	in := salary.DefaultInput()
	in.Trade = strings.TrimSpace(r.URL.Query().Get(handoff.TradeParam))
	writeJSON(w, http.StatusOK, map[string]salaryForm{"form": newSalaryForm(in)})
}

// HandleSalary handles POST /api/v1/salary.
func (h *CalculatorHandler) HandleSalary(w http.ResponseWriter, r *http.Request) {
	const op = "api.salary"
	form := newSalaryForm(salary.DefaultInput())
	if err := h.body.decode(w, r, schemaSalary, &form); err != nil {
		metrics.RecordCalculation("salary", metrics.OutcomeInvalid)
		fail(w, Wrap(op, err))
		return
	}
	in := form.input()
	res, ok := h.deps.EstimateSalary(r.Context(), in)
	if !ok {
		fail(w, WrapKind(op, ErrNotReady, errMissing("trade", "state")))
		return
	}
	writeJSON(w, http.StatusOK, newSalaryResponse(in, res))
}

// HandleCostOfLivingForm handles GET /api/v1/cost-of-living. When the query
// carries an income and a state the comparison runs immediately.
func (h *CalculatorHandler) HandleCostOfLivingForm(w http.ResponseWriter, r *http.Request) {
	prefill := handoff.ParseCostOfLiving(r.URL.Query())
	in := costofliving.DefaultInput()
	in.AnnualIncome = prefill.Income
	in.CurrentState = prefill.State

	resp := costOfLivingFormResponse{Form: newCostOfLivingForm(in), AutoRun: prefill.AutoRun()}
	if resp.AutoRun {
		if res, ok := h.deps.CompareCostOfLiving(r.Context(), in); ok {
			out := newCostOfLivingResponse(res)
			resp.Result = &out
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleCostOfLiving handles POST /api/v1/cost-of-living.
func (h *CalculatorHandler) HandleCostOfLiving(w http.ResponseWriter, r *http.Request) {
	const op = "api.cost_of_living"
	form := newCostOfLivingForm(costofliving.DefaultInput())
	if err := h.body.decode(w, r, schemaCostOfLiving, &form); err != nil {
		metrics.RecordCalculation("cost_of_living", metrics.OutcomeInvalid)
		fail(w, Wrap(op, err))
		return
	}
	res, ok := h.deps.CompareCostOfLiving(r.Context(), form.input())
	if !ok {
		fail(w, WrapKind(op, ErrNotReady, errMissing("annual_income", "current_state")))
		return
	}
	writeJSON(w, http.StatusOK, newCostOfLivingResponse(res))
}

// HandleTravelForm handles GET /api/v1/travel-vs-local, prefilling the local rate.
func (h *CalculatorHandler) HandleTravelForm(w http.ResponseWriter, r *http.Request) {
	in := travel.DefaultInput()
	in.Local.HourlyRate = handoff.ParseTravel(r.URL.Query())
	writeJSON(w, http.StatusOK, map[string]travelVsLocalForm{"form": newTravelVsLocalForm(in)})
}

// HandleTravel handles POST /api/v1/travel-vs-local.
func (h *CalculatorHandler) HandleTravel(w http.ResponseWriter, r *http.Request) {
	const op = "api.travel"
	form := newTravelVsLocalForm(travel.DefaultInput())
	if err := h.body.decode(w, r, schemaTravel, &form); err != nil {
		metrics.RecordCalculation("travel", metrics.OutcomeInvalid)
		fail(w, Wrap(op, err))
		return
	}
	res, ok := h.deps.CompareTravel(r.Context(), form.input())
	if !ok {
		fail(w, WrapKind(op, ErrNotReady, errMissing("local.hourly_rate", "travel.hourly_rate")))
		return
	}
	writeJSON(w, http.StatusOK, newTravelVsLocalResponse(res))
}
