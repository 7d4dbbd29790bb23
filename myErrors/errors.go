package myErrors

import "errors"

// ErrLetterNotFound 表示按 ID 未找到对应的家书记录。
var ErrLetterNotFound = errors.New("letter: not found")

// 内容校验相关的哨兵错误。
// - 由 moderation 包返回，控制器层将其映射为 400 响应。
var (
	ErrEmptyContent      = errors.New("validation: empty content")
	ErrContentTooShort   = errors.New("validation: content too short")
	ErrContentTooLong    = errors.New("validation: content too long")
	ErrDisallowedContent = errors.New("validation: disallowed content")
)

// 存储层错误。
// - ErrStoreWrite: 写路径（分享、点赞、举报）失败，可能是瞬时故障。
// - ErrStoreRead: 读路径（列表、详情）失败。
var (
	ErrStoreWrite = errors.New("store: write failed")
	ErrStoreRead  = errors.New("store: read failed")
)

// 上游大模型调用相关错误。
// - ErrConfiguration: 部署配置缺失或无效（API Key / 模型未配置、模型或端点不存在），运维可修复。
// - ErrAuthentication: 上游拒绝了凭证（401）。
// - ErrUpstream: 上游服务失败（5xx、网络错误、超时），可能是瞬时的。
// - ErrUpstreamFormat: 上游返回了无法识别的响应结构，所有已知解析路径均未命中。
var (
	ErrConfiguration  = errors.New("llm: configuration error")
	ErrAuthentication = errors.New("llm: authentication rejected")
	ErrUpstream       = errors.New("llm: upstream error")
	ErrUpstreamFormat = errors.New("llm: unrecognized response format")
)
