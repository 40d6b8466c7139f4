package logger

import (
	"io"
	"os"
	"strings"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	hertzzap "github.com/hertz-contrib/logger/zap"
	"go.opentelemetry.io/contrib/bridges/otelzap"
	otellog "go.opentelemetry.io/otel/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ObserveMe/config"
)

var (
	Logger   *zap.Logger
	logClose io.Closer
)

func Init() {
	build(nil)
	Logger.Info("Logger initialized successfully",
		zap.String("level", strings.ToUpper(config.Cfg.LoggerLevel)),
		zap.String("format", config.Cfg.LoggerFormat),
		zap.String("environment", config.Cfg.Environment),
	)
}

// EnableExport 在遥测管道就绪后重建 logger，把每条日志同时写入
// OTel LoggerProvider（带当前 span 上下文），实现日志与追踪的关联。
// 导出失败只会在 SDK 内部处理，不影响日志落地到本地输出。
func EnableExport(provider otellog.LoggerProvider) {
	build(provider)
	Logger.Info("Log export to collector enabled")
}

func build(provider otellog.LoggerProvider) {
	coreLevel := zap.NewAtomicLevel()
	coreLevel.SetLevel(parseZapLevel(config.Cfg.LoggerLevel))

	zapOpts := []zap.Option{
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	}
	if provider != nil {
		bridge := otelzap.NewCore(config.Cfg.ServiceName, otelzap.WithLoggerProvider(provider))
		zapOpts = append(zapOpts, zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, bridge)
		}))
	}

	opts := []hertzzap.Option{
		hertzzap.WithCoreEnc(buildEncoder()),
		hertzzap.WithCoreWs(buildWriteSyncer()),
		hertzzap.WithCoreLevel(coreLevel),
		hertzzap.WithZapOptions(zapOpts...),
	}

	hzLogger := hertzzap.NewLogger(opts...)
	hlog.SetLogger(hzLogger)
	hlog.SetLevel(toHlogLevel(coreLevel.Level()))

	Logger = hzLogger.Logger()
}

func Sync() {
	if Logger != nil {
		if err := Logger.Sync(); err != nil {
			_ = err
		}
	}

	if logClose != nil {
		_ = logClose.Close()
	}
}

func buildEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	isText := config.Cfg.IsDevelopment() || strings.EqualFold(config.Cfg.LoggerFormat, "text")
	if isText {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return zapcore.NewConsoleEncoder(encoderConfig)
	}

	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewJSONEncoder(encoderConfig)
}

func buildWriteSyncer() zapcore.WriteSyncer {
	if strings.EqualFold(config.Cfg.LoggerOutputPath, "stdout") {
		return zapcore.AddSync(os.Stdout)
	}

	file, err := os.OpenFile(config.Cfg.LoggerOutputPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		panic("failed to open log file: " + err.Error())
	}
	logClose = file

	return zapcore.AddSync(file)
}

func parseZapLevel(level string) zapcore.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "INFO":
		return zapcore.InfoLevel
	case "WARN":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func toHlogLevel(level zapcore.Level) hlog.Level {
	switch level {
	case zapcore.DebugLevel:
		return hlog.LevelDebug
	case zapcore.InfoLevel:
		return hlog.LevelInfo
	case zapcore.WarnLevel:
		return hlog.LevelWarn
	case zapcore.ErrorLevel:
		return hlog.LevelError
	default:
		return hlog.LevelInfo
	}
}
