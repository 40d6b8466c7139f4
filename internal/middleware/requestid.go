package middleware

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"
)

// RequestIDMiddleware 为缺少 X-Request-Id 的请求生成一个，
// 并回写到响应头，方便用它在日志和 trace 之间对账。
func RequestIDMiddleware() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		requestID := string(c.GetHeader("X-Request-Id"))
		if requestID == "" {
			requestID = uuid.NewString()
			c.Request.Header.Set("X-Request-Id", requestID)
		}
		c.Response.Header.Set("X-Request-Id", requestID)

		c.Next(ctx)
	}
}
