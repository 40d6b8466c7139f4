package middleware

import (
	"context"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/config"
	hertztracing "github.com/hertz-contrib/obs-opentelemetry/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	// 活跃请求数，进入请求路径 +1，离开 -1
	httpActiveRequests metric.Int64UpDownCounter
)

// toValidUTF8 统一清洗用户可控字符串，防止非法 UTF-8 触发指标/trace 序列化失败
func toValidUTF8(val string) string {
	return strings.ToValidUTF8(val, "")
}

// Init 初始化中间件自身的仪表
func Init(meter metric.Meter) error {
	var err error

	httpActiveRequests, err = meter.Int64UpDownCounter(
		"http.server.active_requests",
		metric.WithDescription("Number of active HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return err
	}

	return nil
}

// TelemetryMiddleware 维护活跃请求计数，并把请求 ID 挂到当前 span 上。
// 每个路由自己的 span 由 handler 创建，这里只做跨路由的公共部分。
func TelemetryMiddleware() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		httpActiveRequests.Add(ctx, 1)
		defer httpActiveRequests.Add(ctx, -1)

		if requestID := c.GetHeader("X-Request-Id"); len(requestID) > 0 {
			span := trace.SpanFromContext(ctx)
			span.SetAttributes(attribute.String("http.request_id", toValidUTF8(string(requestID))))
		}

		c.Next(ctx)
	}
}

// NewServerTracerConfig 创建 Hertz Server 的追踪配置
// 返回用于初始化 Hertz server 的配置选项和追踪中间件
func NewServerTracerConfig(opts ...hertztracing.Option) (config.Option, app.HandlerFunc) {
	tracer, cfg := hertztracing.NewServerTracer(opts...)
	return tracer, hertztracing.ServerMiddleware(cfg)
}
