package middleware

import (
	"net/http"
	"sync"

	"github.com/atelierhub/atelier-orders/internal/helpers"
	"github.com/atelierhub/atelier-orders/internal/logger"
	"golang.org/x/time/rate"
)

// RateLimiter - ограничитель частоты запросов на запись.
// На каждого пользователя (или адрес, если токена нет) заводится свой
// token bucket; чтения через ограничитель не проходят и не тратят его.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewRateLimiter - ограничитель на perMinute запросов в минуту на источник
func NewRateLimiter(perMinute int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(float64(perMinute) / 60.0),
		burst:    perMinute,
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if limiter, ok := rl.limiters[key]; ok {
		return limiter
	}
	limiter := rate.NewLimiter(rl.limit, rl.burst)
	rl.limiters[key] = limiter
	return limiter
}

// Allow - проверка без ожидания: либо запрос проходит сразу, либо отклоняется
func (rl *RateLimiter) Allow(key string) bool {
	return rl.getLimiter(key).Allow()
}

// identityKey - имя пользователя из токена, иначе адрес источника
func identityKey(r *http.Request) string {
	if login, err := helpers.GetUsername(r.Context()); err == nil {
		return login
	}
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	return r.RemoteAddr
}

// Handle - middleware, отклоняющее запрос до бизнес-логики при превышении порога
func (rl *RateLimiter) Handle(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := identityKey(r)
		if !rl.Allow(key) {
			logger.Warn("Rate limit exceeded", "key", key, "uri", r.RequestURI)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"ok":false,"error":"rate limit exceeded"}`))
			return
		}
		h.ServeHTTP(w, r)
	})
}
