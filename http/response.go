package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/strongo/log"

	"loan-simulator/domain"
	"loan-simulator/service"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// errorCode classifies err for API clients.
func errorCode(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidPrincipal):
		return http.StatusBadRequest, "invalid_principal"
	case errors.Is(err, domain.ErrInvalidTerm), errors.Is(err, service.ErrInvalidTermRange):
		return http.StatusBadRequest, "invalid_term"
	case errors.Is(err, domain.ErrInvalidRate):
		return http.StatusBadRequest, "invalid_rate"
	case errors.Is(err, domain.ErrUnknownMethod):
		return http.StatusBadRequest, "unknown_method"
	case errors.Is(err, service.ErrInvalidPayment),
		errors.Is(err, service.ErrUnknownPreference),
		errors.Is(err, service.ErrNoFeasibleTerm):
		return http.StatusBadRequest, "bad_request"
	}
	return http.StatusInternalServerError, "internal"
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, code string, msg string) {
	if status >= http.StatusInternalServerError {
		log.Errorf(ctx, "request %s failed: %s", RequestIDFromContext(ctx), msg)
	}
	writeJSON(ctx, w, status, errorResponse{Error: msg, Code: code})
}

func writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	status, code := errorCode(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.Errorf(ctx, "request %s: %v", RequestIDFromContext(ctx), err)
		msg = "internal server error"
	}
	writeJSON(ctx, w, status, errorResponse{Error: msg, Code: code})
}

// writeJSON encodes into a buffer first so a failed encoding does not leave
// a half written 200 behind.
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Errorf(ctx, "error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Warningf(ctx, "error writing response: %v", err)
	}
}
