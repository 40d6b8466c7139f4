package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// GaugeFuncs 是 Observable 仪表的取值回调。
// 回调在 MeterProvider 的每个导出周期被同步调用，必须无副作用、不做阻塞 I/O。
type GaugeFuncs struct {
	MemoryUsage func() int64
	CPUUsage    func() float64
}

// Registry 持有进程级的命名仪表，启动时创建一次，所有请求共享。
// 所有 Record/Add 只写 SDK 的内存缓冲，对并发调用安全，不会阻塞在网络上。
type Registry struct {
	RequestTotal    metric.Int64Counter
	RequestDuration metric.Float64Histogram
	ActiveUsers     metric.Int64UpDownCounter
	ErrorTotal      metric.Int64Counter

	memoryUsage metric.Int64ObservableGauge
	cpuUsage    metric.Float64ObservableGauge
}

// NewRegistry 初始化全部仪表。
// 仪表按名字绑定：SDK 对同名同型的重复注册返回同一个数据流，
// 因此这里是唯一的创建点，main 只会调用一次。
func NewRegistry(meter metric.Meter, gauges GaugeFuncs) (*Registry, error) {
	var err error

	r := &Registry{}

	r.RequestTotal, err = meter.Int64Counter(
		"http_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	r.RequestDuration, err = meter.Float64Histogram(
		"http_request_duration_seconds",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0),
	)
	if err != nil {
		return nil, err
	}

	r.ActiveUsers, err = meter.Int64UpDownCounter(
		"active_users",
		metric.WithDescription("Number of active users"),
		metric.WithUnit("{user}"),
	)
	if err != nil {
		return nil, err
	}

	r.ErrorTotal, err = meter.Int64Counter(
		"http_errors_total",
		metric.WithDescription("Total number of HTTP errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	if gauges.MemoryUsage != nil {
		r.memoryUsage, err = meter.Int64ObservableGauge(
			"memory_usage_bytes",
			metric.WithDescription("Memory usage in bytes"),
			metric.WithUnit("By"),
			metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
				o.Observe(gauges.MemoryUsage())
				return nil
			}),
		)
		if err != nil {
			return nil, err
		}
	}

	if gauges.CPUUsage != nil {
		r.cpuUsage, err = meter.Float64ObservableGauge(
			"cpu_usage_percent",
			metric.WithDescription("CPU usage percentage"),
			metric.WithUnit("%"),
			metric.WithFloat64Callback(func(_ context.Context, o metric.Float64Observer) error {
				o.Observe(gauges.CPUUsage())
				return nil
			}),
		)
		if err != nil {
			return nil, err
		}
	}

	return r, nil
}

// RecordRequest 记录一次请求
func (r *Registry) RecordRequest(ctx context.Context, endpoint, method string) {
	r.RequestTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("endpoint", endpoint),
		attribute.String("method", method),
	))
}

// RecordDuration 记录一次请求耗时
func (r *Registry) RecordDuration(ctx context.Context, endpoint string, seconds float64) {
	r.RequestDuration.Record(ctx, seconds, metric.WithAttributes(
		attribute.String("endpoint", endpoint),
	))
}

// RecordError 记录一次错误
func (r *Registry) RecordError(ctx context.Context, endpoint, errorType string) {
	r.ErrorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("endpoint", endpoint),
		attribute.String("error_type", errorType),
	))
}

// AddActiveUsers 调整活跃用户数
func (r *Registry) AddActiveUsers(ctx context.Context, delta int64) {
	r.ActiveUsers.Add(ctx, delta)
}
