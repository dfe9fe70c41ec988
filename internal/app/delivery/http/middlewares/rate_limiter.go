package middlewares

import (
	"embrew-service/internal/pkg/constvars"
	"embrew-service/internal/pkg/exceptions"
	"embrew-service/internal/pkg/utils"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// minClientIdleTTL is how long an idle client is remembered at least.
const minClientIdleTTL = 10 * time.Minute

type rateClient struct {
	limiter      *rate.Limiter
	blockedUntil time.Time
	lastSeen     time.Time
}

// RateLimiter throttles clients by IP with a token bucket and blocks a client that runs its
// bucket dry for blockTime. Clients idle for longer than idleTTL are forgotten.
type RateLimiter struct {
	clients   map[string]*rateClient
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	blockTime time.Duration
	idleTTL   time.Duration
	lastSweep time.Time
	log       *zap.Logger
	now       func() time.Time
}

func NewRateLimiter(perSecond, burst int, blockTime time.Duration, log *zap.Logger) *RateLimiter {
	if burst < 1 {
		burst = 1
	}

	// an entry may only be dropped once its block expired and its bucket refilled
	idleTTL := minClientIdleTTL
	if blockTime > idleTTL {
		idleTTL = blockTime
	}
	if perSecond > 0 {
		if refill := time.Duration(burst) * time.Second / time.Duration(perSecond); refill > idleTTL {
			idleTTL = refill
		}
	}

	return &RateLimiter{
		clients:   make(map[string]*rateClient),
		limit:     rate.Limit(perSecond),
		burst:     burst,
		blockTime: blockTime,
		idleTTL:   idleTTL,
		log:       log,
		now:       time.Now,
	}
}

func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}

		if !rl.allow(ip) {
			rl.log.Warn("rate limit exceeded", zap.String(constvars.LoggingRemoteAddrKey, ip))
			w.Header().Set(constvars.HeaderRetryAfter, rl.retryAfter())
			utils.BuildErrorResponse(rl.log, w, exceptions.ErrTooManyRequests(ip))
			return
		}

		next.ServeHTTP(w, req)
	})
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweep(now)

	client, exists := rl.clients[ip]
	if !exists {
		client = &rateClient{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[ip] = client
	}
	client.lastSeen = now

	if now.Before(client.blockedUntil) {
		return false
	}
	if !client.limiter.AllowN(now, 1) {
		client.blockedUntil = now.Add(rl.blockTime)
		return false
	}
	return true
}

// sweep drops clients idle for idleTTL. It walks the map at most once per idleTTL.
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < rl.idleTTL {
		return
	}
	rl.lastSweep = now

	for ip, client := range rl.clients {
		if now.Sub(client.lastSeen) >= rl.idleTTL && !now.Before(client.blockedUntil) {
			delete(rl.clients, ip)
		}
	}
}

func (rl *RateLimiter) retryAfter() string {
	seconds := int(rl.blockTime / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	return strconv.Itoa(seconds)
}

// PageRateLimiter builds the limiter guarding the page proxy. It returns nil when page throttling
// is switched off.
func (m *Middlewares) PageRateLimiter() *RateLimiter {
	pages := m.InternalConfig.Pages
	if pages.RateLimitPerSecond <= 0 {
		return nil
	}
	blockTime := time.Duration(pages.RateLimitBlockInSeconds) * time.Second
	return NewRateLimiter(pages.RateLimitPerSecond, pages.RateLimitBurst, blockTime, m.Log)
}
