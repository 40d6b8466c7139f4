package metrics

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestRegistry(t *testing.T, gauges GaugeFuncs) (*Registry, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	registry, err := NewRegistry(mp.Meter("test"), gauges)
	require.NoError(t, err)
	return registry, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	return rm
}

func findMetric(rm metricdata.ResourceMetrics, name string) (metricdata.Metrics, bool) {
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == name {
				return m, true
			}
		}
	}
	return metricdata.Metrics{}, false
}

// 并发递增不丢更新。
func TestConcurrentRecordRequest(t *testing.T) {
	registry, reader := newTestRegistry(t, GaugeFuncs{})

	const n = 500
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			registry.RecordRequest(context.Background(), "/", "GET")
		}()
	}
	wg.Wait()

	m, ok := findMetric(collect(t, reader), "http_requests_total")
	require.True(t, ok)
	sum := m.Data.(metricdata.Sum[int64])
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(n), sum.DataPoints[0].Value)
	assert.True(t, sum.IsMonotonic)
}

// 不同 endpoint 属性落在不同数据点上。
func TestEndpointSeparation(t *testing.T) {
	registry, reader := newTestRegistry(t, GaugeFuncs{})

	ctx := context.Background()
	registry.RecordRequest(ctx, "/", "GET")
	registry.RecordRequest(ctx, "/metrics", "GET")
	registry.RecordRequest(ctx, "/metrics", "GET")

	m, ok := findMetric(collect(t, reader), "http_requests_total")
	require.True(t, ok)
	sum := m.Data.(metricdata.Sum[int64])
	require.Len(t, sum.DataPoints, 2)

	values := map[string]int64{}
	for _, dp := range sum.DataPoints {
		v, found := dp.Attributes.Value(attribute.Key("endpoint"))
		require.True(t, found)
		values[v.AsString()] = dp.Value
	}
	assert.Equal(t, int64(1), values["/"])
	assert.Equal(t, int64(2), values["/metrics"])
}

func TestDurationHistogram(t *testing.T) {
	registry, reader := newTestRegistry(t, GaugeFuncs{})

	ctx := context.Background()
	registry.RecordDuration(ctx, "/", 0.2)
	registry.RecordDuration(ctx, "/", 0.4)

	m, ok := findMetric(collect(t, reader), "http_request_duration_seconds")
	require.True(t, ok)
	hist := m.Data.(metricdata.Histogram[float64])
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, uint64(2), hist.DataPoints[0].Count)
	assert.InDelta(t, 0.6, hist.DataPoints[0].Sum, 1e-9)
}

func TestActiveUsersUpDown(t *testing.T) {
	registry, reader := newTestRegistry(t, GaugeFuncs{})

	ctx := context.Background()
	registry.AddActiveUsers(ctx, 3)
	registry.AddActiveUsers(ctx, -1)

	m, ok := findMetric(collect(t, reader), "active_users")
	require.True(t, ok)
	sum := m.Data.(metricdata.Sum[int64])
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(2), sum.DataPoints[0].Value)
	assert.False(t, sum.IsMonotonic)
}

// Observable 回调只在采集时被调用，不在记录路径上。
func TestObservableGaugeCallbacks(t *testing.T) {
	var calls int
	registry, reader := newTestRegistry(t, GaugeFuncs{
		MemoryUsage: func() int64 {
			calls++
			return 1_500_000
		},
		CPUUsage: func() float64 { return 42.0 },
	})
	_ = registry

	assert.Zero(t, calls)

	rm := collect(t, reader)
	assert.Equal(t, 1, calls)

	m, ok := findMetric(rm, "memory_usage_bytes")
	require.True(t, ok)
	gauge := m.Data.(metricdata.Gauge[int64])
	require.Len(t, gauge.DataPoints, 1)
	assert.Equal(t, int64(1_500_000), gauge.DataPoints[0].Value)

	m, ok = findMetric(rm, "cpu_usage_percent")
	require.True(t, ok)
	cpu := m.Data.(metricdata.Gauge[float64])
	require.Len(t, cpu.DataPoints, 1)
	assert.Equal(t, 42.0, cpu.DataPoints[0].Value)
}

// 同名仪表重复创建返回同一条数据流。
func TestDuplicateInstrumentName(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	meter := mp.Meter("test")
	first, err := NewRegistry(meter, GaugeFuncs{})
	require.NoError(t, err)
	second, err := NewRegistry(meter, GaugeFuncs{})
	require.NoError(t, err)

	ctx := context.Background()
	first.RecordRequest(ctx, "/", "GET")
	second.RecordRequest(ctx, "/", "GET")

	m, ok := findMetric(collect(t, reader), "http_requests_total")
	require.True(t, ok)
	sum := m.Data.(metricdata.Sum[int64])
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(2), sum.DataPoints[0].Value)
}
