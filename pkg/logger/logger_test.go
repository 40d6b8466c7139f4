package logger

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.uber.org/zap/zapcore"
)

type captureExporter struct {
	mu      sync.Mutex
	records []sdklog.Record
}

func (e *captureExporter) Export(_ context.Context, records []sdklog.Record) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.records = append(e.records, records...)
	return nil
}

func (e *captureExporter) Shutdown(context.Context) error   { return nil }
func (e *captureExporter) ForceFlush(context.Context) error { return nil }

func (e *captureExporter) bodies() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []string
	for _, r := range e.records {
		out = append(out, r.Body().AsString())
	}
	return out
}

// 日志桥接：zap 写出的记录要同时进入 OTel 管道。
func TestEnableExportBridgesRecords(t *testing.T) {
	Init()

	exporter := &captureExporter{}
	provider := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewSimpleProcessor(exporter)),
	)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	EnableExport(provider)
	require.NotNil(t, Logger)

	Logger.Info("bridge check")

	assert.Contains(t, exporter.bodies(), "bridge check")
}

func TestParseZapLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"DEBUG":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"Warn":    zapcore.WarnLevel,
		"ERROR":   zapcore.ErrorLevel,
		"unknown": zapcore.InfoLevel,
	}

	for in, want := range cases {
		assert.Equal(t, want, parseZapLevel(in))
	}
}
