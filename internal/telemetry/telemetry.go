// Package telemetry 把 tracer、仪表注册表和 logger 聚合成一个显式的
// 上下文对象，进程启动时构造一次，注入到所有请求路径，
// 替代散落的全局单例。
package telemetry

import (
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"ObserveMe/pkg/metrics"
)

type Telemetry struct {
	Tracer  trace.Tracer
	Metrics *metrics.Registry
	Logger  *zap.Logger
}

func New(tracer trace.Tracer, registry *metrics.Registry, logger *zap.Logger) *Telemetry {
	return &Telemetry{
		Tracer:  tracer,
		Metrics: registry,
		Logger:  logger,
	}
}
