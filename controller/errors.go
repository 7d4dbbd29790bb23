package controller

import (
	"errors"
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/letter_service/myErrors"
)

// validationMessage 把内容校验哨兵错误翻译为面向用户的提示。
// 未识别的错误返回空串，由调用方决定兜底文案。
func validationMessage(err error) string {
	switch {
	case errors.Is(err, myErrors.ErrEmptyContent):
		return "家书内容不能为空"
	case errors.Is(err, myErrors.ErrContentTooShort):
		return "家书内容太短，至少需要10个字"
	case errors.Is(err, myErrors.ErrContentTooLong):
		return "家书内容太长，最多1000个字"
	case errors.Is(err, myErrors.ErrDisallowedContent):
		return "内容包含不当词汇，请修改后重试"
	}
	return ""
}

// respondServiceError 把服务层/存储层/上游的类型化错误翻译为响应。
// 原始错误细节只进服务端日志，这里给用户的消息一律是安全的概述。
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, myErrors.ErrLetterNotFound):
		response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "家书不存在或已被移除")
	case errors.Is(err, myErrors.ErrAuthentication), errors.Is(err, myErrors.ErrConfiguration):
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "服务暂时不可用，请稍后重试")
	case errors.Is(err, myErrors.ErrUpstream), errors.Is(err, myErrors.ErrUpstreamFormat):
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "生成家书失败，请稍后重试")
	case errors.Is(err, myErrors.ErrStoreWrite), errors.Is(err, myErrors.ErrStoreRead):
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "操作失败，请稍后重试")
	default:
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "服务内部错误，请稍后重试")
	}
}
