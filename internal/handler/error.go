package handler

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"ObserveMe/pkg/errors"
	"ObserveMe/pkg/response"
)

// Error 处理 GET /error
// 无条件返回模拟错误，用于验证错误遥测链路
func (h *Handler) Error(ctx context.Context, c *app.RequestContext) {
	h.tel.Logger.Warn("Received request to /error endpoint - intentional error simulation")

	start := time.Now()
	spanCtx, span := h.tel.Tracer.Start(ctx, "error_operation")
	defer span.End()
	span.SetAttributes(attribute.String("operation.type", "error"))

	h.tel.Metrics.RecordRequest(spanCtx, "/error", "GET")
	h.tel.Metrics.RecordError(spanCtx, "/error", "simulated")
	h.tel.Metrics.RecordDuration(spanCtx, "/error", time.Since(start).Seconds())

	span.SetStatus(codes.Error, "simulated error")

	h.tel.Logger.Error("Intentional error raised at /error endpoint",
		zap.String("endpoint", "/error"),
		zap.Int("status_code", 500),
	)

	response.Error(spanCtx, c, errors.SimulatedError)
}
