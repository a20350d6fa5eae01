package middleware

import (
	"staffdesk-http-service/internal/error/code"
	"staffdesk-http-service/internal/error/response"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// 简单的令牌桶限流器
type TokenBucket struct {
	rate       float64    // 每秒填充的令牌数
	capacity   int        // 桶的容量
	tokens     float64    // 当前令牌数
	lastRefill time.Time  // 上次填充时间
	mu         sync.Mutex // 互斥锁
}

// 创建新的令牌桶限流器
func NewTokenBucket(rate float64, capacity int) *TokenBucket {
	return &TokenBucket{
		rate:       rate,
		capacity:   capacity,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// 尝试获取令牌
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tb.lastRefill = now

	// 填充令牌
	tb.tokens += elapsed * tb.rate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}

	// 尝试获取令牌
	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}

	return false
}

// 限流器映射
var (
	ipLimiters     = make(map[string]*TokenBucket)
	ipLimitersMu   sync.RWMutex
	pathLimiters   = make(map[string]*TokenBucket)
	pathLimitersMu sync.RWMutex
)

// 获取IP限流器
func getIPLimiter(ip string, rate float64, burst int) *TokenBucket {
	ipLimitersMu.RLock()
	limiter, exists := ipLimiters[ip]
	ipLimitersMu.RUnlock()

	if !exists {
		limiter = NewTokenBucket(rate, burst)
		ipLimitersMu.Lock()
		ipLimiters[ip] = limiter
		ipLimitersMu.Unlock()
	}

	return limiter
}

// 获取路径限流器
func getPathLimiter(path string, rate float64, burst int) *TokenBucket {
	pathLimitersMu.RLock()
	limiter, exists := pathLimiters[path]
	pathLimitersMu.RUnlock()

	if !exists {
		limiter = NewTokenBucket(rate, burst)
		pathLimitersMu.Lock()
		pathLimiters[path] = limiter
		pathLimitersMu.Unlock()
	}

	return limiter
}

// IPRateLimiter 按IP限流
func IPRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := getIPLimiter(c.ClientIP(), rate, burst)
		if !limiter.Allow() {
			response.Fail(c, code.ErrTooManyRequests, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// PathRateLimiter 按路径限流
func PathRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := getPathLimiter(c.Request.URL.Path, rate, burst)
		if !limiter.Allow() {
			response.Fail(c, code.ErrTooManyRequests, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// 定期清理限流器，防止映射无限增长
func init() {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			ipLimitersMu.Lock()
			ipLimiters = make(map[string]*TokenBucket)
			ipLimitersMu.Unlock()

			pathLimitersMu.Lock()
			pathLimiters = make(map[string]*TokenBucket)
			pathLimitersMu.Unlock()
		}
	}()
}
