package middleware

import (
	"net/http"
	"sync"

	"github.com/tony-montemuro/smb-website-sub002/internal/utils"
	"golang.org/x/time/rate"
)

// RateLimiter limite la création de soumissions par token de session, avec un
// token bucket par session
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

// NewRateLimiter crée un limiteur (jetons/seconde, burst)
func NewRateLimiter(perSec float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(perSec),
		burst:    burst,
	}
}

func (rl *RateLimiter) limiterFor(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[key] = limiter
	}
	return limiter
}

// Limit rejette en 429 les requêtes qui dépassent le quota de la session.
// À chaîner après AuthMiddleware (la clé est le token; à défaut l'adresse
// distante)
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key, err := GetTokenFromContext(r)
		if err != nil {
			key = r.RemoteAddr
		}

		if !rl.limiterFor(key).Allow() {
			utils.ErrorSimple(w, http.StatusTooManyRequests, "too many submissions, slow down")
			return
		}

		next.ServeHTTP(w, r)
	})
}
