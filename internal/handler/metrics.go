package handler

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"ObserveMe/internal/simulate"
	"ObserveMe/pkg/response"
)

// MetricsSnapshot 是 /metrics 返回的模拟用量快照。
type MetricsSnapshot struct {
	ActiveUsers int     `json:"active_users"`
	MemoryUsage int64   `json:"memory_usage"`
	CPUUsage    float64 `json:"cpu_usage"`
}

// Metrics 处理 GET /metrics
func (h *Handler) Metrics(ctx context.Context, c *app.RequestContext) {
	h.tel.Logger.Info("Received request to /metrics endpoint")

	spanCtx, span := h.tel.Tracer.Start(ctx, "metrics_operation")
	defer span.End()
	span.SetAttributes(attribute.String("operation.type", "metrics"))

	elapsed := simulate.Work(spanCtx, 200*time.Millisecond, 800*time.Millisecond)

	h.tel.Metrics.RecordRequest(spanCtx, "/metrics", "GET")
	h.tel.Metrics.RecordDuration(spanCtx, "/metrics", elapsed.Seconds())
	h.tel.Metrics.AddActiveUsers(spanCtx, simulate.ActiveUserDelta())

	snapshot := MetricsSnapshot{
		ActiveUsers: simulate.ActiveUsers(),
		MemoryUsage: simulate.MemoryUsage(),
		CPUUsage:    simulate.CPUUsage(),
	}
	h.tel.Logger.Info("Returning metrics data",
		zap.Int("active_users", snapshot.ActiveUsers),
		zap.Int64("memory_usage", snapshot.MemoryUsage),
	)

	response.JSON(spanCtx, c, snapshot)
}
