package http

import (
	"math"
	"net"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
)

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// RateLimit rejects requests the limiter refuses with 429 and a Retry-After
// header in whole seconds.
func RateLimit(limiter Limiter, next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		ok, retryAfter := limiter.Allow(clientIP(r))
		if !ok {
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			writeError(r.Context(), w, http.StatusTooManyRequests, "rate_limited", "rate limit exceeded")
			return
		}
		next(w, r, ps)
	}
}
