package middleware

import (
	"context"
	"sync"

	"github.com/cloudwego/hertz/pkg/app"
	"golang.org/x/time/rate"

	"ObserveMe/pkg/errors"
	"ObserveMe/pkg/response"
)

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	// 每秒请求数
	RPS int
	// 突发容量
	Burst int
}

// RateLimiter 按客户端 IP 的进程内令牌桶限流器。
// 演示服务不依赖外部存储，限流状态随进程存亡。
type RateLimiter struct {
	config   RateLimitConfig
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	if config.Burst <= 0 {
		config.Burst = config.RPS
	}
	return &RateLimiter{
		config:   config,
		limiters: make(map[string]*rate.Limiter),
	}
}

func (r *RateLimiter) limiterFor(ip string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.limiters[ip]
	if !ok {
		l = rate.NewLimiter(rate.Limit(r.config.RPS), r.config.Burst)
		r.limiters[ip] = l
	}
	return l
}

// RateLimitMiddleware 超限请求直接返回 429，不进入 handler。
func RateLimitMiddleware(config RateLimitConfig) app.HandlerFunc {
	limiter := NewRateLimiter(config)

	return func(ctx context.Context, c *app.RequestContext) {
		if !limiter.limiterFor(c.ClientIP()).Allow() {
			response.Error(ctx, c, errors.TooManyRequests)
			c.Abort()
			return
		}

		c.Next(ctx)
	}
}
