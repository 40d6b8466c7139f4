package handler

import (
	"ObserveMe/internal/telemetry"
)

// Handler 持有注入的遥测上下文，路由逻辑全部挂在它上面。
type Handler struct {
	tel *telemetry.Telemetry

	// / 路由的模拟故障概率，[0, 1]
	errorRate float64
}

func New(tel *telemetry.Telemetry, errorRate float64) *Handler {
	return &Handler{
		tel:       tel,
		errorRate: errorRate,
	}
}
