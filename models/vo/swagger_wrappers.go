package vo

// --- 用于成功响应且包含具体 Data 的包装器 ---

// GenerateLetterResponseWrapper 对应 response.APIResponse[vo.GenerateLetterVO]
type GenerateLetterResponseWrapper struct {
	Code    int              `json:"code" example:"0"`
	Message string           `json:"message,omitempty" example:"success"`
	Data    GenerateLetterVO `json:"data"`
}

// ShareLetterResponseWrapper 对应 response.APIResponse[vo.ShareLetterVO]
type ShareLetterResponseWrapper struct {
	Code    int           `json:"code" example:"0"`
	Message string        `json:"message,omitempty" example:"success"`
	Data    ShareLetterVO `json:"data"`
}

// LikeLetterResponseWrapper 对应 response.APIResponse[vo.LikeLetterVO]
type LikeLetterResponseWrapper struct {
	Code    int          `json:"code" example:"0"`
	Message string       `json:"message,omitempty" example:"success"`
	Data    LikeLetterVO `json:"data"`
}

// WallResponseWrapper 对应 response.APIResponse[vo.WallVO]
type WallResponseWrapper struct {
	Code    int    `json:"code" example:"0"`
	Message string `json:"message,omitempty" example:"success"`
	Data    WallVO `json:"data"`
}

// FlagLetterResponseWrapper 对应 response.APIResponse[vo.FlagLetterVO]
type FlagLetterResponseWrapper struct {
	Code    int          `json:"code" example:"0"`
	Message string       `json:"message,omitempty" example:"success"`
	Data    FlagLetterVO `json:"data"`
}

// --- 用于错误响应 或 简单成功响应（只有 Code 和 Message） ---

// BaseResponseWrapper 代表一个只包含 Code 和 Message 的响应。
// 适用于错误情况（RespondError 返回时 Data 为 nil 且 omitempty）。
type BaseResponseWrapper struct {
	Code    int    `json:"code" example:"0"`          // 成功时为 0, 错误时为具体错误码
	Message string `json:"message" example:"success"` // 成功或错误消息
}
