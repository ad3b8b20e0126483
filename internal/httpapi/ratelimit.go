package httpapi

import (
	"net/http"
	"sync"
	"time"

	"github.com/julienschmidt/httprouter"
	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long an owner's limiter survives without requests.
const limiterIdleTTL = 10 * time.Minute

type ownerLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ownerRateLimiter keeps a token bucket per authenticated owner.
type ownerRateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*ownerLimiter
	limit     rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

// newOwnerRateLimiter allows perMinute requests per owner per minute.
// A non-positive perMinute disables limiting.
func newOwnerRateLimiter(perMinute int) *ownerRateLimiter {
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(perMinute))
	}

	return &ownerRateLimiter{
		limiters: make(map[string]*ownerLimiter),
		limit:    limit,
		burst:    max(perMinute, 1),
		now:      time.Now,
	}
}

func (l *ownerRateLimiter) allow(ownerID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > limiterIdleTTL {
		for id, ol := range l.limiters {
			if now.Sub(ol.lastSeen) > limiterIdleTTL {
				delete(l.limiters, id)
			}
		}
		l.lastSweep = now
	}

	ol, ok := l.limiters[ownerID]
	if !ok {
		ol = &ownerLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[ownerID] = ol
	}
	ol.lastSeen = now

	return ol.limiter.AllowN(now, 1)
}

// wrap must run after authentication so the owner is known.
func (l *ownerRateLimiter) wrap(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if !l.allow(OwnerID(r.Context())) {
			w.Header().Set("Retry-After", "60")
			writeJSON(w, http.StatusTooManyRequests, errorResponse{
				Code:    CodeTooManyRequests,
				Message: "export rate limit exceeded",
			})
			return
		}
		next(w, r, ps)
	}
}
