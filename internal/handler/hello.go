package handler

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"ObserveMe/internal/simulate"
	"ObserveMe/pkg/errors"
	"ObserveMe/pkg/response"
)

// Hello 处理 GET /
// 模拟一段处理耗时，按配置概率返回模拟错误
func (h *Handler) Hello(ctx context.Context, c *app.RequestContext) {
	h.tel.Logger.Info("Received request to / endpoint")

	spanCtx, span := h.tel.Tracer.Start(ctx, "hello_operation")
	defer span.End()
	span.SetAttributes(attribute.String("operation.type", "hello"))

	elapsed := simulate.Work(spanCtx, 100*time.Millisecond, 500*time.Millisecond)

	h.tel.Metrics.RecordRequest(spanCtx, "/", "GET")
	h.tel.Metrics.RecordDuration(spanCtx, "/", elapsed.Seconds())

	// 模拟用户上下线
	h.tel.Metrics.AddActiveUsers(spanCtx, simulate.ActiveUserDelta())

	if simulate.ShouldFail(h.errorRate) {
		h.tel.Logger.Error("Simulated error occurred at / endpoint",
			zap.String("endpoint", "/"),
			zap.String("error_type", "simulated"),
		)
		h.tel.Metrics.RecordError(spanCtx, "/", "simulated")
		span.SetStatus(codes.Error, "simulated error")
		response.Error(spanCtx, c, errors.SimulatedError)
		return
	}

	h.tel.Logger.Info("Successfully processed request to / endpoint")
	response.Message(spanCtx, c, "Hello, OpenTelemetry!")
}
