package http

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"loan-simulator/domain"
	"loan-simulator/format"
	"loan-simulator/service"
)

// Terms are decoded as numbers so a fractional term is reported as an
// invalid term rather than a malformed body.
type scheduleRequest struct {
	Principal  float64     `json:"principal"`
	TermMonths json.Number `json:"term_months"`
	AnnualRate float64     `json:"annual_rate"`
	Method     string      `json:"method"`
}

type displaySummary struct {
	Currency         string `json:"currency"`
	Principal        string `json:"principal"`
	FirstInstallment string `json:"first_installment"`
	TotalInterest    string `json:"total_interest"`
	TotalPayable     string `json:"total_payable"`
}

type scheduleResponse struct {
	domain.Schedule
	Display *displaySummary `json:"display,omitempty"`
}

type compareRequest struct {
	Principal  float64     `json:"principal"`
	TermMonths json.Number `json:"term_months"`
	AnnualRate float64     `json:"annual_rate"`
}

// parseTerm accepts whole numbers only, including ones written as 12.0.
func parseTerm(n json.Number) (int, error) {
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, errors.Wrapf(domain.ErrInvalidTerm, "term_months %q must be a whole number of months", string(n))
	}
	return int(f), nil
}

type compareResponse struct {
	domain.Comparison
	Display map[domain.Method]displaySummary `json:"display,omitempty"`
}

type LoanHandler struct {
	service   *service.LoanService
	formatter *format.Formatter
}

func NewLoanHandler(service *service.LoanService, formatter *format.Formatter) *LoanHandler {
	return &LoanHandler{service: service, formatter: formatter}
}

func (h *LoanHandler) display(s domain.Schedule) displaySummary {
	return displaySummary{
		Currency:         h.formatter.Currency(),
		Principal:        h.formatter.Format(s.Parameters.Principal),
		FirstInstallment: h.formatter.Format(s.Summary.FirstInstallment),
		TotalInterest:    h.formatter.Format(s.Summary.TotalInterest),
		TotalPayable:     h.formatter.Format(s.Summary.TotalPayable),
	}
}

func wantsDisplay(r *http.Request) bool {
	return r.URL.Query().Get("format") == "display"
}

// CalculateSchedule handles POST /loan/schedule.
func (h *LoanHandler) CalculateSchedule(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	h.respondSchedule(w, r, req)
}

// GetSchedule handles GET /loan/schedule with query parameters.
func (h *LoanHandler) GetSchedule(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()

	principal, err := format.ParseAmount(q.Get("principal"))
	if err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, "invalid_principal", "principal must be a number with at most two decimals")
		return
	}
	rate, err := strconv.ParseFloat(q.Get("annual_rate"), 64)
	if err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, "invalid_rate", "annual_rate must be a number")
		return
	}

	h.respondSchedule(w, r, scheduleRequest{
		Principal:  principal,
		TermMonths: json.Number(q.Get("term_months")),
		AnnualRate: rate,
		Method:     q.Get("method"),
	})
}

func (h *LoanHandler) respondSchedule(w http.ResponseWriter, r *http.Request, req scheduleRequest) {
	ctx := r.Context()

	// An invalid principal is reported ahead of the term.
	term, err := parseTerm(req.TermMonths)
	if err != nil && req.Principal > 0 {
		writeServiceError(ctx, w, err)
		return
	}

	method := domain.MethodFrench
	if req.Method != "" {
		m, err := domain.ParseMethod(req.Method)
		if err != nil {
			writeServiceError(ctx, w, err)
			return
		}
		method = m
	}

	schedule, err := h.service.CalculateSchedule(ctx, domain.LoanParameters{
		Principal:         req.Principal,
		TermMonths:        term,
		AnnualRatePercent: req.AnnualRate,
		Method:            method,
	})
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	resp := scheduleResponse{Schedule: schedule}
	if wantsDisplay(r) {
		d := h.display(schedule)
		resp.Display = &d
	}
	writeJSON(ctx, w, http.StatusOK, resp)
}

// CompareMethods handles POST /loan/compare.
func (h *LoanHandler) CompareMethods(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	// An invalid principal is reported ahead of the term.
	term, err := parseTerm(req.TermMonths)
	if err != nil && req.Principal > 0 {
		writeServiceError(ctx, w, err)
		return
	}

	comparison, err := h.service.CompareMethods(ctx, req.Principal, term, req.AnnualRate)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	resp := compareResponse{Comparison: comparison}
	if wantsDisplay(r) {
		resp.Display = make(map[domain.Method]displaySummary, len(comparison.Schedules))
		for _, s := range comparison.Schedules {
			resp.Display[s.Parameters.Method] = h.display(s)
		}
	}
	writeJSON(ctx, w, http.StatusOK, resp)
}
