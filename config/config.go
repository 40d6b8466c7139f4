package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

var Cfg Config

type Config struct {
	// 服务配置
	ServerHost  string `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	ServerPort  string `env:"SERVER_PORT" envDefault:"5000"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"` // development, staging, production

	// Resource 标识，附加在所有遥测数据上
	ServiceName    string `env:"SERVICE_NAME" envDefault:"simple-app"`
	ServiceVersion string `env:"SERVICE_VERSION" envDefault:"0.1.0"`

	// OTLP Collector 配置
	OTLPEndpoint string  `env:"OTLP_ENDPOINT" envDefault:"otel-collector:4317"`
	OTLPInsecure bool    `env:"OTLP_INSECURE" envDefault:"true"`
	SampleRatio  float64 `env:"OTEL_SAMPLE_RATIO" envDefault:"1.0"`

	// 指标导出周期（秒）
	MetricExportInterval int `env:"METRIC_EXPORT_INTERVAL_SECONDS" envDefault:"15"`

	// 日志配置
	LoggerLevel      string `env:"LOGGER_LEVEL" envDefault:"INFO"`
	LoggerFormat     string `env:"LOGGER_FORMAT" envDefault:"text"` // json, text
	LoggerOutputPath string `env:"LOGGER_OUTPUT_PATH" envDefault:"stdout"`

	// 速率限制配置, 配置在中间件内
	RateLimitEnabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"false"`
	RateLimitRPS     int  `env:"RATE_LIMIT_RPS" envDefault:"100"` // 每秒请求数

	// 模拟故障配置，演示错误遥测用
	SimulatedErrorRate float64 `env:"SIMULATED_ERROR_RATE" envDefault:"0.1"`

	// 优雅关闭超时（秒），也是遥测最后一次 flush 的上限
	ShutdownTimeout int `env:"SHUTDOWN_TIMEOUT_SECONDS" envDefault:"5"`
}

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("WARN: Cannot load .env file: %v, using environment variables", err)
	}

	cfg, err := Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	Cfg = cfg
}

// Load 从环境变量解析并校验配置。
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.OTLPEndpoint == "" {
		return fmt.Errorf("OTLP_ENDPOINT is required")
	}
	if c.ServiceName == "" {
		return fmt.Errorf("SERVICE_NAME is required")
	}
	if c.SampleRatio < 0 || c.SampleRatio > 1 {
		return fmt.Errorf("OTEL_SAMPLE_RATIO must be in [0, 1], got %v", c.SampleRatio)
	}
	if c.SimulatedErrorRate < 0 || c.SimulatedErrorRate > 1 {
		return fmt.Errorf("SIMULATED_ERROR_RATE must be in [0, 1], got %v", c.SimulatedErrorRate)
	}
	if c.MetricExportInterval <= 0 {
		return fmt.Errorf("METRIC_EXPORT_INTERVAL_SECONDS must be positive, got %d", c.MetricExportInterval)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT_SECONDS must be positive, got %d", c.ShutdownTimeout)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
