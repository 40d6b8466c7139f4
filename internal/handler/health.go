package handler

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"
)

// Health 处理 GET /healthz
// 存活探针，不产生业务 span 和指标
func (h *Handler) Health(ctx context.Context, c *app.RequestContext) {
	c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
