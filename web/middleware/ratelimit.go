package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/clubsite/server/web/entity"
)

// ipLimiter tracks one token bucket per client IP. Buckets idle longer than
// ttl are dropped on the next lookup to bound memory.
type ipLimiter struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	ttl     time.Duration
	entries map[string]*ipBucket
}

type ipBucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

func newIPLimiter(limit rate.Limit, burst int, ttl time.Duration) *ipLimiter {
	return &ipLimiter{
		limit:   limit,
		burst:   burst,
		ttl:     ttl,
		entries: make(map[string]*ipBucket),
	}
}

func (m *ipLimiter) allow(key string) bool {
	now := time.Now()
	m.mu.Lock()
	defer m.mu.Unlock()
	b := m.entries[key]
	if b == nil {
		b = &ipBucket{lim: rate.NewLimiter(m.limit, m.burst), lastSeen: now}
		m.entries[key] = b
	}
	b.lastSeen = now

	for k, v := range m.entries {
		if now.Sub(v.lastSeen) > m.ttl {
			delete(m.entries, k)
		}
	}
	return b.lim.Allow()
}

// LoginRateLimit allows 10 login attempts per client IP every 15 minutes,
// replenished continuously.
func LoginRateLimit() gin.HandlerFunc {
	limiter := newIPLimiter(rate.Every(15*time.Minute/10), 10, 30*time.Minute)
	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP()) {
			entity.JSONError(c, http.StatusTooManyRequests, "too many login attempts, please try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}
