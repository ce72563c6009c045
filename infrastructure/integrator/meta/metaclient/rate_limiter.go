package metaclient

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const rateWindow = time.Hour

// RateLimiter mantém uma janela deslizante de uma hora com os horários das chamadas
// e um intervalo mínimo entre chamadas consecutivas.
type RateLimiter struct {
	mu       sync.Mutex
	clock    Clock
	maxCalls int
	calls    []time.Time
	pacer    *rate.Limiter
}

func NewRateLimiter(maxCalls int, minDelay time.Duration, clock Clock) *RateLimiter {
	if clock == nil {
		clock = systemClock{}
	}

	limit := rate.Inf
	if minDelay > 0 {
		limit = rate.Every(minDelay)
	}

	return &RateLimiter{
		clock:    clock,
		maxCalls: maxCalls,
		pacer:    rate.NewLimiter(limit, 1),
	}
}

// Wait bloqueia até que uma nova chamada caiba no orçamento e registra a chamada
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for r.maxCalls > 0 {
		now := r.clock.Now()
		r.prune(now)
		if len(r.calls) < r.maxCalls {
			break
		}

		wait := r.calls[0].Add(rateWindow).Sub(now)
		logrus.WithFields(logrus.Fields{
			"calls_in_window": len(r.calls),
			"wait":            wait.String(),
		}).Info("meta: call budget exhausted, waiting for window")

		if err := r.clock.Sleep(ctx, wait); err != nil {
			return err
		}
	}

	now := r.clock.Now()
	reservation := r.pacer.ReserveN(now, 1)
	if delay := reservation.DelayFrom(now); delay > 0 {
		if err := r.clock.Sleep(ctx, delay); err != nil {
			reservation.CancelAt(now)
			return err
		}
	}

	r.calls = append(r.calls, r.clock.Now())
	return nil
}

// CallsInWindow retorna quantas chamadas ainda contam na janela atual
func (r *RateLimiter) CallsInWindow() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prune(r.clock.Now())
	return len(r.calls)
}

func (r *RateLimiter) prune(now time.Time) {
	cutoff := now.Add(-rateWindow)

	i := 0
	for i < len(r.calls) && !r.calls[i].After(cutoff) {
		i++
	}

	if i > 0 {
		r.calls = append(r.calls[:0], r.calls[i:]...)
	}
}
