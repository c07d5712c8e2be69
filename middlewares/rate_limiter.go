package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type rateLimit struct {
	mu        sync.Mutex
	visitors  map[string]int
	limit     int
	resetTime time.Duration
	message   string
}

// NewRateLimiter counts requests per client IP in a fixed window; the
// counters reset wholesale when the window rolls over. Two instances exist:
// a general API limiter and a much stricter one for login attempts.
func NewRateLimiter(limit int, resetTime time.Duration, message string) *rateLimit {
	r1 := &rateLimit{
		visitors:  make(map[string]int),
		limit:     limit,
		resetTime: resetTime,
		message:   message,
	}
	go r1.resetTimelimit()
	return r1
}

func (r1 *rateLimit) resetTimelimit() {
	for {
		time.Sleep(r1.resetTime)
		r1.mu.Lock()
		r1.visitors = make(map[string]int)
		r1.mu.Unlock()
	}
}

func (r1 *rateLimit) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		r1.mu.Lock()
		visitorIP := c.ClientIP()
		r1.visitors[visitorIP]++
		over := r1.visitors[visitorIP] > r1.limit
		r1.mu.Unlock()

		if over {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": r1.message})
			return
		}
		c.Next()
	}
}
