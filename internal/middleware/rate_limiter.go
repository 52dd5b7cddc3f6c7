package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/maesedev/dealership-project/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// limiter is a fixed-window per-IP counter. Two instances run in the room's
// API: a wide one for general traffic and a tight one on /auth/login so a
// stolen tablet can't brute-force dealer credentials.
type limiter struct {
	mu      sync.Mutex
	windows map[string]*ipWindow
	limit   int
	window  time.Duration
	message string
}

type ipWindow struct {
	count int
	until time.Time
}

func newLimiter(limit int, window time.Duration, message string) *limiter {
	l := &limiter{
		windows: make(map[string]*ipWindow),
		limit:   limit,
		window:  window,
		message: message,
	}
	go l.purge()
	return l
}

func (l *limiter) allow(ip string) (bool, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	w, ok := l.windows[ip]
	if !ok || now.After(w.until) {
		w = &ipWindow{until: now.Add(l.window)}
		l.windows[ip] = w
	}
	w.count++
	return w.count <= l.limit, w.until
}

// purge drops expired windows so IPs that never return don't accumulate.
func (l *limiter) purge() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		l.mu.Lock()
		dropped := 0
		for ip, w := range l.windows {
			if now.After(w.until) {
				delete(l.windows, ip)
				dropped++
			}
		}
		remaining := len(l.windows)
		l.mu.Unlock()
		if dropped > 0 {
			log.Debug().
				Int("dropped", dropped).
				Int("remaining", remaining).
				Msg("rate limit windows purged")
		}
	}
}

func (l *limiter) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, until := l.allow(c.ClientIP())
		if !ok {
			c.Header("Retry-After", until.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.message))
			return
		}
		c.Next()
	}
}

// RateLimiter caps general API traffic per IP over the given window.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return newLimiter(limit, window, "Demasiadas solicitudes. Intente nuevamente en un momento.").handler()
}

// LoginRateLimiter caps login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return newLimiter(20, time.Minute, "Demasiados intentos de login. Intente en 1 minuto.").handler()
}
