package http

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// NewRouter wires every API route. Loan routes share limiter.
func NewRouter(
	loanHandler *LoanHandler,
	termHandler *TermRecommendationHandler,
	limiter Limiter,
) http.Handler {
	router := httprouter.New()

	router.POST("/loan/schedule", RateLimit(limiter, loanHandler.CalculateSchedule))
	router.GET("/loan/schedule", RateLimit(limiter, loanHandler.GetSchedule))
	router.POST("/loan/compare", RateLimit(limiter, loanHandler.CompareMethods))
	router.POST("/loan/recommend-term", RateLimit(limiter, termHandler.RecommendTerm))
	router.GET("/healthz", Health)

	router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(r.Context(), w, http.StatusNotFound, "not_found", "not found")
	})

	return RequestIDMiddleware(router)
}

func Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}
