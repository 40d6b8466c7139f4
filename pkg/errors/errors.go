package errors

func (d Definition) Error() string {
	return d.Message
}

// Definition 表示业务错误码及默认信息。
type Definition struct {
	Code    string
	Message string
}

// 请求处理错误。
var (
	// SimulatedError 是演示用的人为故障，不是缺陷。
	SimulatedError  = Definition{Code: "SIMULATED_ERROR", Message: "Simulated error"}
	TooManyRequests = Definition{Code: "TOO_MANY_REQUESTS", Message: "Too many requests"}
	InternalError   = Definition{Code: "INTERNAL_SERVER_ERROR", Message: "Internal server error"}
)

// 遥测管道错误，仅在进程内记录，绝不返回给 HTTP 调用方。
var (
	ExportFailed = Definition{Code: "TELEMETRY_EXPORT_FAILED", Message: "Telemetry export failed"}
)

// Lookup 提供错误码查询能力。
var Lookup = map[string]Definition{
	SimulatedError.Code:  SimulatedError,
	TooManyRequests.Code: TooManyRequests,
	InternalError.Code:   InternalError,
	ExportFailed.Code:    ExportFailed,
}
