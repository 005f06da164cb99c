package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"loan-simulator/domain"
	"loan-simulator/service"
)

type TermRecommendationHandler struct {
	service *service.TermRecommendationService
}

func NewTermRecommendationHandler(service *service.TermRecommendationService) *TermRecommendationHandler {
	return &TermRecommendationHandler{service: service}
}

// RecommendTerm handles POST /loan/recommend-term.
func (h *TermRecommendationHandler) RecommendTerm(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		writeError(ctx, w, http.StatusUnsupportedMediaType, "bad_request", "Content-Type must be application/json")
		return
	}

	var input domain.TermRecommendationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(ctx, w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	if input.Method == "" {
		input.Method = domain.MethodFrench
	} else if m, err := domain.ParseMethod(string(input.Method)); err == nil {
		input.Method = m
	}
	if input.Preference == "" {
		input.Preference = domain.PreferenceBalanced
	}

	result, err := h.service.RecommendTerm(ctx, input)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, result)
}
