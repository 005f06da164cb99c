package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/matryer/is"

	"loan-simulator/format"
	"loan-simulator/repository"
	"loan-simulator/service"
)

func TestRateLimiter_FixedWindow(t *testing.T) {
	is := is.New(t)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(2, time.Minute)
	defer limiter.Stop()
	limiter.now = func() time.Time { return now }

	ok, _ := limiter.Allow("10.0.0.1")
	is.True(ok)
	now = now.Add(20 * time.Second)
	ok, _ = limiter.Allow("10.0.0.1")
	is.True(ok)

	ok, retryAfter := limiter.Allow("10.0.0.1")
	is.True(!ok)
	is.Equal(retryAfter, 40*time.Second) // counted from the window start

	ok, _ = limiter.Allow("10.0.0.2")
	is.True(ok) // separate window per client

	now = now.Add(40 * time.Second)
	ok, _ = limiter.Allow("10.0.0.1")
	is.True(ok)
}

func TestRateLimiter_SweepDropsIdleWindows(t *testing.T) {
	is := is.New(t)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(1, time.Minute)
	limiter.now = func() time.Time { return now }

	limiter.Allow("idle")
	now = now.Add(59 * time.Minute)
	limiter.Allow("busy")
	now = now.Add(2 * time.Minute)
	limiter.sweep()

	_, idle := limiter.windows["idle"]
	_, busy := limiter.windows["busy"]
	is.True(!idle)
	is.True(busy)

	limiter.Stop()
	limiter.Stop()
}

type denyAll struct {
	wait  time.Duration
	calls []string
}

func (d *denyAll) Allow(client string) (bool, time.Duration) {
	d.calls = append(d.calls, client)
	return false, d.wait
}

func TestRouter_UsesInjectedLimiter(t *testing.T) {
	is := is.New(t)
	limiter := &denyAll{wait: 1500 * time.Millisecond}
	loanService := service.NewLoanService(repository.NewMemoryCache())
	router := NewRouter(
		NewLoanHandler(loanService, format.MustFormatter("en-US", "USD")),
		NewTermRecommendationHandler(service.NewTermRecommendationService(loanService)),
		limiter,
	)

	w := do(router, http.MethodPost, "/loan/schedule", `{"principal": 1000, "term_months": 6, "annual_rate": 12}`)
	is.Equal(w.Code, http.StatusTooManyRequests)
	is.Equal(w.Header().Get("Retry-After"), "2") // rounded up to whole seconds
	is.Equal(len(limiter.calls), 1)
	is.Equal(limiter.calls[0], "192.0.2.1") // httptest remote address

	is.Equal(do(router, http.MethodGet, "/healthz", "").Code, http.StatusOK)
	is.Equal(len(limiter.calls), 1)
}
