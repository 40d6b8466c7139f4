package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"go.uber.org/zap"

	"ObserveMe/config"
	"ObserveMe/internal/handler"
	"ObserveMe/internal/middleware"
	"ObserveMe/internal/router"
	"ObserveMe/internal/simulate"
	"ObserveMe/internal/telemetry"
	"ObserveMe/pkg/logger"
	"ObserveMe/pkg/metrics"
	"ObserveMe/pkg/otel"
)

func main() {
	// 日志部分
	logger.Init()
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Logger.Info("Received shutdown signal",
			zap.String("signal", sig.String()),
		)
		cancel()
	}()

	// 初始化遥测管道，三条信号共用一个 Resource 和 collector 端点
	pipeline, err := otel.Init(ctx, otel.Config{
		ServiceName:    config.Cfg.ServiceName,
		ServiceVersion: config.Cfg.ServiceVersion,
		Environment:    config.Cfg.Environment,
		OTLPEndpoint:   config.Cfg.OTLPEndpoint,
		Insecure:       config.Cfg.OTLPInsecure,
		SampleRatio:    config.Cfg.SampleRatio,
		MetricInterval: time.Duration(config.Cfg.MetricExportInterval) * time.Second,
	})
	if err != nil {
		logger.Logger.Fatal("Failed to initialize telemetry pipeline", zap.Error(err))
	}

	// 管道就绪后把日志桥接到 collector
	logger.EnableExport(pipeline.LoggerProvider)

	meter := pipeline.MeterProvider.Meter(config.Cfg.ServiceName)

	// 仪表注册表只在这里创建一次，所有请求共享句柄
	registry, err := metrics.NewRegistry(meter, metrics.GaugeFuncs{
		MemoryUsage: simulate.MemoryUsage,
		CPUUsage:    simulate.CPUUsage,
	})
	if err != nil {
		logger.Logger.Fatal("Failed to create instrument registry", zap.Error(err))
	}

	// 初始化中间件
	if err := middleware.Init(meter); err != nil {
		logger.Logger.Fatal("Failed to initialize middlewares", zap.Error(err))
	}

	tel := telemetry.New(
		pipeline.TracerProvider.Tracer(config.Cfg.ServiceName),
		registry,
		logger.Logger,
	)

	logger.Logger.Info("Server starting",
		zap.String("service", config.Cfg.ServiceName),
		zap.String("port", config.Cfg.ServerPort),
		zap.String("environment", config.Cfg.Environment),
	)

	addr := net.JoinHostPort(config.Cfg.ServerHost, config.Cfg.ServerPort)
	tracerOpt, tracerMW := middleware.NewServerTracerConfig()
	h := server.Default(server.WithHostPorts(addr), tracerOpt)
	h.Use(tracerMW)

	router.Register(h, handler.New(tel, config.Cfg.SimulatedErrorRate))

	shutdownTimeout := time.Duration(config.Cfg.ShutdownTimeout) * time.Second

	// 优雅关闭：在单独的 goroutine 中监听关闭信号并调用 Shutdown
	go func() {
		<-ctx.Done()
		logger.Logger.Info("Initiating graceful shutdown...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := h.Shutdown(shutdownCtx); err != nil {
			logger.Logger.Error("Failed to shutdown HTTP server", zap.Error(err))
		}
	}()

	logger.Logger.Info("HTTP server listening", zap.String("addr", addr))

	h.Spin()

	// 服务器停止接收请求后做最后一次有界 flush，超时丢弃属于预期行为
	if err := pipeline.Shutdown(context.Background(), shutdownTimeout); err != nil {
		logger.Logger.Error("Telemetry pipeline shutdown incomplete", zap.Error(err))
	}

	logger.Logger.Info("Server shutting down gracefully")
}
