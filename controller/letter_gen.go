package controller

import (
	"net/http"
	"strings"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/letter_service/models/dto"
	"github.com/Xushengqwer/letter_service/models/vo"
	"github.com/Xushengqwer/letter_service/service"
)

// LetterGenController 处理家书生成相关的 HTTP 请求。
type LetterGenController struct {
	genService *service.LetterGenService
}

// NewLetterGenController 构造函数，注入服务层依赖。
func NewLetterGenController(genService *service.LetterGenService) *LetterGenController {
	return &LetterGenController{
		genService: genService,
	}
}

// bindGenerateRequest 绑定并校验生成请求的三个必填字段。
// 校验失败时已写入 400 响应，返回 nil。
func bindGenerateRequest(c *gin.Context) *dto.GenerateLetterRequest {
	var req dto.GenerateLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return nil
	}
	if strings.TrimSpace(req.ParentInput) == "" {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "请输入想对孩子说的话")
		return nil
	}
	if strings.TrimSpace(req.ParentRole) == "" {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "请选择您的角色")
		return nil
	}
	if strings.TrimSpace(req.ChildName) == "" {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "请输入孩子的称呼")
		return nil
	}
	return &req
}

// GenerateLetter 处理阻塞式生成家书的 HTTP 请求
// @Summary      生成家书
// @Description  把父母的简短话语转化为一封完整的温暖家书，等待上游生成完毕后一次性返回。
// @Tags         letters (家书)
// @Accept       json
// @Produce      json
// @Param        request body dto.GenerateLetterRequest true "生成请求"
// @Success      200 {object} vo.GenerateLetterResponseWrapper "家书生成成功"
// @Failure      400 {object} vo.BaseResponseWrapper "缺少必填字段"
// @Failure      500 {object} vo.BaseResponseWrapper "上游或配置错误"
// @Router       /api/v1/letter/generate-letter [post]
func (ctrl *LetterGenController) GenerateLetter(c *gin.Context) {
	req := bindGenerateRequest(c)
	if req == nil {
		return
	}

	letter, err := ctrl.genService.GenerateLetter(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.RespondSuccess(c, vo.GenerateLetterVO{Letter: letter}, "家书生成成功")
}

// GenerateLetterStream 处理流式生成家书的 HTTP 请求
// @Summary      流式生成家书
// @Description  以事件流方式增量返回家书文本片段；响应禁用缓存并保持连接。校验错误在流开始前以 JSON 返回。
// @Tags         letters (家书)
// @Accept       json
// @Produce      text/event-stream
// @Param        request body dto.GenerateLetterRequest true "生成请求"
// @Success      200 {string} string "纯文本片段流"
// @Failure      400 {object} vo.BaseResponseWrapper "缺少必填字段"
// @Failure      500 {object} vo.BaseResponseWrapper "上游或配置错误（流开始前）"
// @Router       /api/v1/letter/generate-letter/stream [post]
func (ctrl *LetterGenController) GenerateLetterStream(c *gin.Context) {
	req := bindGenerateRequest(c)
	if req == nil {
		return
	}

	wroteAny := false
	err := ctrl.genService.GenerateLetterStream(c.Request.Context(), req, func(chunk string) error {
		// 客户端断开时停止转发，上游连接随之释放。
		select {
		case <-c.Request.Context().Done():
			return c.Request.Context().Err()
		default:
		}
		if !wroteAny {
			// 头在首个片段到达时才写出，流开始前的错误仍能以 JSON 返回。
			header := c.Writer.Header()
			header.Set("Content-Type", "text/event-stream; charset=utf-8")
			header.Set("Cache-Control", "no-cache, no-transform")
			header.Set("Connection", "keep-alive")
			header.Set("X-Accel-Buffering", "no")
		}
		if _, writeErr := c.Writer.WriteString(chunk); writeErr != nil {
			return writeErr
		}
		c.Writer.Flush()
		wroteAny = true
		return nil
	})

	if err != nil && !wroteAny {
		// 流尚未开始，仍然可以返回结构化错误。
		respondServiceError(c, err)
		return
	}
	// 流已经开始后出错只能就地结束；错误已在下层记录。
}

// RegisterRoutes 注册 LetterGenController 的阻塞式路由
func (ctrl *LetterGenController) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/generate-letter", ctrl.GenerateLetter)
}

// RegisterStreamRoutes 注册流式路由。流式端点持续写出 SSE 片段，
// 不能挂在普通请求超时中间件之下，由调用方放进单独的分组。
func (ctrl *LetterGenController) RegisterStreamRoutes(group *gin.RouterGroup) {
	group.POST("/generate-letter/stream", ctrl.GenerateLetterStream)
}
