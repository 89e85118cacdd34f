package middleware

import (
	"net"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	appErrors "github.com/noah-isme/tutor-finder/pkg/errors"
	"github.com/noah-isme/tutor-finder/pkg/response"
)

const defaultLimiterIdleTTL = 3 * time.Minute

// RateLimitConfig sets the token bucket each client IP receives.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
	// IdleTTL is how long an unused client limiter is kept.
	IdleTTL time.Duration
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterStore holds one limiter per client IP. Idle entries are swept at
// most once per idle period.
type limiterStore struct {
	mu        sync.Mutex
	limiters  map[string]*clientLimiter
	limit     rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func newLimiterStore(cfg RateLimitConfig) *limiterStore {
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 10
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 20
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = defaultLimiterIdleTTL
	}
	return &limiterStore{
		limiters:  make(map[string]*clientLimiter),
		limit:     rate.Limit(cfg.RequestsPerSecond),
		burst:     cfg.Burst,
		idleTTL:   cfg.IdleTTL,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (s *limiterStore) allow(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) >= s.idleTTL {
		for key, entry := range s.limiters {
			if now.Sub(entry.lastSeen) >= s.idleTTL {
				delete(s.limiters, key)
			}
		}
		s.lastSweep = now
	}

	entry, exists := s.limiters[ip]
	if !exists {
		entry = &clientLimiter{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.limiters[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter.AllowN(now, 1)
}

func (s *limiterStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.limiters)
}

// RateLimit rejects clients that exceed their per-IP budget with 429.
// Connections from loopback are not limited; the page reaches the catalog API
// through them. The loopback check uses the socket address, never forwarding
// headers, and clients are keyed by gin's ClientIP, which only honours headers
// from the engine's trusted proxies.
func RateLimit(cfg RateLimitConfig, logger *zap.Logger) gin.HandlerFunc {
	return rateLimit(newLimiterStore(cfg), logger)
}

func rateLimit(store *limiterStore, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		if remote := net.ParseIP(c.RemoteIP()); remote != nil && remote.IsLoopback() {
			c.Next()
			return
		}
		ip := c.ClientIP()
		if !store.allow(ip) {
			logger.Warn("rate limit exceeded", zap.String("ip", ip), zap.String("path", c.Request.URL.Path))
			response.Abort(c, appErrors.ErrRateLimited)
			return
		}
		c.Next()
	}
}
