package handler

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// maxTrackedClients bounds the limiter map; past this the map is reset
// rather than evicted per entry, which is cheap and good enough for a
// single-admin site.
const maxTrackedClients = 10000

// clientLimiters caches one token-bucket limiter per client IP.
type clientLimiters struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

func newClientLimiters(rps float64, burst int) *clientLimiters {
	return &clientLimiters{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(rps),
		burst:    burst,
	}
}

func (cl *clientLimiters) get(ip string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	if len(cl.limiters) > maxTrackedClients {
		cl.limiters = make(map[string]*rate.Limiter)
	}

	limiter, ok := cl.limiters[ip]
	if !ok {
		limiter = rate.NewLimiter(cl.rate, cl.burst)
		cl.limiters[ip] = limiter
	}
	return limiter
}

// RateLimit rejects requests from a client address once its quota within
// the rolling window is spent. Rejected requests get 429 immediately,
// they are never queued.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	limiters := newClientLimiters(rps, burst)

	return func(c *gin.Context) {
		if !limiters.get(c.ClientIP()).Allow() {
			c.String(http.StatusTooManyRequests, "Слишком много запросов, попробуйте позже")
			c.Abort()
			return
		}
		c.Next()
	}
}
