package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/cmlabs-hris/workstatus-backend-go/internal/handler/http/response"
	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter keeps one token bucket per key (client address or user id).
type IPRateLimiter struct {
	ips map[string]*limiterEntry
	mu  *sync.Mutex
	r   rate.Limit // requests per second
	b   int        // burst
	now func() time.Time
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips: make(map[string]*limiterEntry),
		mu:  &sync.Mutex{},
		r:   r,
		b:   b,
		now: time.Now,
	}
}

func (i *IPRateLimiter) GetLimiter(key string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	entry, exists := i.ips[key]
	if !exists {
		entry = &limiterEntry{limiter: rate.NewLimiter(i.r, i.b)}
		i.ips[key] = entry
	}
	entry.lastSeen = i.now()

	return entry.limiter
}

// Purge drops buckets not used for longer than idle and returns how many were dropped.
func (i *IPRateLimiter) Purge(idle time.Duration) int {
	i.mu.Lock()
	defer i.mu.Unlock()

	cutoff := i.now().Add(-idle)
	purged := 0
	for key, entry := range i.ips {
		if entry.lastSeen.Before(cutoff) {
			delete(i.ips, key)
			purged++
		}
	}
	return purged
}

// Len reports the number of tracked keys.
func (i *IPRateLimiter) Len() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.ips)
}

// RateLimitByIP throttles by client address. Place it after middleware.RealIP.
func RateLimitByIP(limiter *IPRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if !limiter.GetLimiter(clientIP(req)).Allow() {
				response.TooManyRequests(w, "Too many requests from this IP")
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}

// RateLimitByUser throttles authenticated requests per user. Requests without
// a user id pass through.
func RateLimitByUser(limiter *IPRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			userID, ok := UserIDFromContext(req.Context())
			if !ok {
				next.ServeHTTP(w, req)
				return
			}
			if !limiter.GetLimiter(strconv.FormatInt(userID, 10)).Allow() {
				response.TooManyRequests(w, "Too many requests from this user")
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
