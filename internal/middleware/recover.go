package middleware

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/cloudwego/hertz/pkg/app"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"ObserveMe/config"
	"ObserveMe/pkg/errors"
	"ObserveMe/pkg/logger"
	"ObserveMe/pkg/response"
)

// RecoverMiddleware 捕获 handler panic，记录日志和 span 状态后返回 500。
// panic 不属于模拟错误，真的发生说明有缺陷。
func RecoverMiddleware() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		defer func() {
			if err := recover(); err != nil {
				handlePanic(ctx, c, err)
			}
		}()

		c.Next(ctx)
	}
}

func handlePanic(ctx context.Context, c *app.RequestContext, err interface{}) {
	fields := []zap.Field{
		zap.String("panic", fmt.Sprintf("%v", err)),
		zap.String("path", string(c.Path())),
		zap.String("method", string(c.Method())),
		zap.String("client_ip", c.ClientIP()),
	}
	if requestID := string(c.GetHeader("X-Request-Id")); requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}
	if !config.Cfg.IsProduction() {
		fields = append(fields, zap.ByteString("stack", debug.Stack()))
	}

	logger.Logger.Error("[PANIC RECOVERED]", fields...)

	span := trace.SpanFromContext(ctx)
	span.SetStatus(codes.Error, "panic recovered")

	response.Error(ctx, c, errors.InternalError)
}
