package response

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"

	"ObserveMe/pkg/errors"
)

// MessageBody 成功响应格式，与采集侧约定的扁平结构。
type MessageBody struct {
	Message string `json:"message"`
}

// ErrorBody 错误响应格式。
type ErrorBody struct {
	Error string `json:"error"`
}

func errorToHTTPStatus(err error) int {
	def, ok := err.(errors.Definition)
	if !ok {
		return http.StatusInternalServerError
	}

	// 根据错误码映射 HTTP 状态码
	switch def.Code {
	case errors.TooManyRequests.Code:
		return http.StatusTooManyRequests // 429
	default:
		return http.StatusInternalServerError // 500
	}
}

// Message 返回成功响应
func Message(ctx context.Context, c *app.RequestContext, msg string) {
	c.JSON(http.StatusOK, MessageBody{Message: msg})
}

// JSON 返回任意结构的成功响应
func JSON(ctx context.Context, c *app.RequestContext, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Error 返回错误响应
func Error(ctx context.Context, c *app.RequestContext, err error) {
	statusCode := errorToHTTPStatus(err)

	message := err.Error()
	if def, ok := err.(errors.Definition); ok {
		message = def.Message
	}

	c.JSON(statusCode, ErrorBody{Error: message})
}
