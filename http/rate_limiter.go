package http

import (
	"sync"
	"time"
)

// Limiter decides whether a client may make another request. When it may
// not, the duration tells how long until it can retry.
type Limiter interface {
	Allow(client string) (bool, time.Duration)
}

const idleWindows = 60

// window counts one client's requests since start.
type window struct {
	start time.Time
	used  int
}

// RateLimiter admits up to limit requests per client in each fixed window
// of length period. Windows idle for idleWindows periods are swept.
type RateLimiter struct {
	limit  int
	period time.Duration
	now    func() time.Time

	mu      sync.Mutex
	windows map[string]*window

	done     chan struct{}
	stopOnce sync.Once
}

func NewRateLimiter(limit int, period time.Duration) *RateLimiter {
	rl := &RateLimiter{
		limit:   limit,
		period:  period,
		now:     time.Now,
		windows: map[string]*window{},
		done:    make(chan struct{}),
	}
	go rl.sweepEvery(period * idleWindows / 2)
	return rl
}

func (r *RateLimiter) Allow(client string) (bool, time.Duration) {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	w := r.windows[client]
	if w == nil || now.Sub(w.start) >= r.period {
		w = &window{start: now}
		r.windows[client] = w
	}
	if w.used >= r.limit {
		return false, w.start.Add(r.period).Sub(now)
	}
	w.used++
	return true, 0
}

// Stop ends the sweeper. Calling it again is a no-op.
func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.done) })
}

func (r *RateLimiter) sweepEvery(every time.Duration) {
	if every <= 0 {
		return
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-r.done:
			return
		case <-t.C:
			r.sweep()
		}
	}
}

func (r *RateLimiter) sweep() {
	cutoff := r.now().Add(-idleWindows * r.period)

	r.mu.Lock()
	defer r.mu.Unlock()
	for client, w := range r.windows {
		if w.start.Before(cutoff) {
			delete(r.windows, client)
		}
	}
}
