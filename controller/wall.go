package controller

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	appConfig "github.com/Xushengqwer/letter_service/config"
	"github.com/Xushengqwer/letter_service/models/dto"
	"github.com/Xushengqwer/letter_service/models/vo"
	"github.com/Xushengqwer/letter_service/moderation"
	"github.com/Xushengqwer/letter_service/ratelimit"
	"github.com/Xushengqwer/letter_service/service"
)

// WallController 处理展示墙相关的 HTTP 请求: 分享、点赞、举报、列表。
// 内容校验与限流是写路径的边界闸门，在任何有副作用的调用之前完成。
type WallController struct {
	wallService *service.LetterWallService
	contentGate *moderation.ContentGate
	limiter     *ratelimit.SlidingWindowLimiter
	rateCfg     appConfig.RateLimitConfig
}

// NewWallController 构造函数，注入服务层与边界组件。
func NewWallController(
	wallService *service.LetterWallService,
	contentGate *moderation.ContentGate,
	limiter *ratelimit.SlidingWindowLimiter,
	rateCfg appConfig.RateLimitConfig,
) *WallController {
	return &WallController{
		wallService: wallService,
		contentGate: contentGate,
		limiter:     limiter,
		rateCfg:     rateCfg,
	}
}

// ShareLetter 处理分享家书到展示墙的 HTTP 请求
// @Summary      分享家书
// @Description  校验内容与限流后把家书发布到展示墙；匿名分享会在落库时替换署名。
// @Tags         wall (展示墙)
// @Accept       json
// @Produce      json
// @Param        request body dto.ShareLetterRequest true "分享请求"
// @Success      200 {object} vo.ShareLetterResponseWrapper "分享成功"
// @Failure      400 {object} vo.BaseResponseWrapper "参数缺失或内容校验失败"
// @Failure      429 {object} vo.BaseResponseWrapper "分享过于频繁"
// @Failure      500 {object} vo.BaseResponseWrapper "存储失败"
// @Router       /api/v1/letter/share-letter [post]
func (ctrl *WallController) ShareLetter(c *gin.Context) {
	var req dto.ShareLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}
	if strings.TrimSpace(req.ParentRole) == "" {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "请选择您的角色")
		return
	}
	if strings.TrimSpace(req.ChildName) == "" {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "请输入孩子的称呼")
		return
	}

	// 1. 内容校验，在任何副作用之前。
	if err := ctrl.contentGate.Validate(req.Content); err != nil {
		msg := validationMessage(err)
		if msg == "" {
			msg = "家书内容不符合要求"
		}
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, msg)
		return
	}

	// 2. 按客户端 IP 限流。被拒绝的尝试不计入窗口。
	window := time.Duration(ctrl.rateCfg.WindowSecondsOrDefault()) * time.Second
	limit := ctrl.limiter.Check(clientIP(c.Request), ctrl.rateCfg.MaxSharesOrDefault(), window)
	if !limit.Allowed {
		msg := fmt.Sprintf("您分享得太频繁了，请稍后再试（每小时最多%d次）", ctrl.rateCfg.MaxSharesOrDefault())
		response.RespondError(c, http.StatusTooManyRequests, response.ErrCodeClientInvalidInput, msg)
		return
	}

	// 3. 落库并发布审核事件。
	letter, err := ctrl.wallService.ShareLetter(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.RespondSuccess(c, vo.ShareLetterVO{Letter: letter, Remaining: limit.Remaining}, "分享成功")
}

// LikeLetter 处理点赞的 HTTP 请求
// @Summary      点赞家书
// @Description  为指定家书点赞，按会话去重；重复点赞不改变计数。
// @Tags         wall (展示墙)
// @Accept       json
// @Produce      json
// @Param        request body dto.LikeLetterRequest true "点赞请求"
// @Success      200 {object} vo.LikeLetterResponseWrapper "点赞结果"
// @Failure      400 {object} vo.BaseResponseWrapper "缺少家书 ID 或会话 ID"
// @Failure      404 {object} vo.BaseResponseWrapper "家书不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "存储失败"
// @Router       /api/v1/letter/like-letter [post]
func (ctrl *WallController) LikeLetter(c *gin.Context) {
	var req dto.LikeLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}
	if req.LetterID == "" {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "缺少家书ID")
		return
	}
	if req.SessionID == "" {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "缺少会话ID")
		return
	}

	result, err := ctrl.wallService.LikeLetter(c.Request.Context(), req.LetterID, req.SessionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	likeVO := vo.LikeLetterVO{
		Success:      result.Success,
		Likes:        result.Likes,
		AlreadyLiked: result.AlreadyLiked,
	}
	if result.AlreadyLiked {
		likeVO.Message = "您已经点过赞了"
	} else {
		likeVO.Message = "您的心意已送达 💖"
	}
	response.RespondSuccess(c, likeVO, "点赞处理完成")
}

// FlagLetter 处理举报的 HTTP 请求
// @Summary      举报家书
// @Description  将家书加入举报集合；举报只做标注，处置由外部流程决定。
// @Tags         wall (展示墙)
// @Accept       json
// @Produce      json
// @Param        request body dto.FlagLetterRequest true "举报请求"
// @Success      200 {object} vo.FlagLetterResponseWrapper "举报已记录"
// @Failure      400 {object} vo.BaseResponseWrapper "缺少家书 ID"
// @Failure      500 {object} vo.BaseResponseWrapper "存储失败"
// @Router       /api/v1/letter/flag-letter [post]
func (ctrl *WallController) FlagLetter(c *gin.Context) {
	var req dto.FlagLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}
	if req.LetterID == "" {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "缺少家书ID")
		return
	}

	flagCount, err := ctrl.wallService.FlagLetter(c.Request.Context(), req.LetterID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, vo.FlagLetterVO{FlagCount: flagCount}, "举报已记录")
}

// GetWall 处理展示墙列表的 HTTP 请求
// @Summary      获取展示墙列表
// @Description  按最新或最热分页读取展示墙家书；响应可被缓存约 60 秒。
// @Tags         wall (展示墙)
// @Accept       json
// @Produce      json
// @Param        sort query string false "排序方式 recent|popular，默认 recent"
// @Param        limit query int false "每页数量 [1,50]，默认 20"
// @Param        offset query int false "偏移量，默认 0" minimum(0)
// @Success      200 {object} vo.WallResponseWrapper "展示墙列表"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的排序或分页参数"
// @Failure      500 {object} vo.BaseResponseWrapper "存储失败"
// @Router       /api/v1/letter/wall [get]
func (ctrl *WallController) GetWall(c *gin.Context) {
	var query dto.WallQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	wallVO, err := ctrl.wallService.GetWall(c.Request.Context(), &query)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// 列表允许被 CDN/浏览器缓存约 60 秒，减轻读路径压力。
	c.Header("Cache-Control", "public, s-maxage=60, stale-while-revalidate=30")
	response.RespondSuccess(c, *wallVO, "展示墙获取成功")
}

// GetLetter 处理按 ID 获取单封家书的 HTTP 请求
// @Summary      获取家书详情
// @Description  按 ID 读取展示墙上的单封家书。
// @Tags         wall (展示墙)
// @Accept       json
// @Produce      json
// @Param        letter_id path string true "家书 ID"
// @Success      200 {object} vo.BaseResponseWrapper "家书详情"
// @Failure      404 {object} vo.BaseResponseWrapper "家书不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "存储失败"
// @Router       /api/v1/letter/letters/{letter_id} [get]
func (ctrl *WallController) GetLetter(c *gin.Context) {
	letterID := c.Param("letter_id")
	if letterID == "" {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "缺少家书ID")
		return
	}

	letter, err := ctrl.wallService.GetLetter(c.Request.Context(), letterID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, letter, "家书详情获取成功")
}

// RegisterRoutes 注册 WallController 的路由
func (ctrl *WallController) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/share-letter", ctrl.ShareLetter)
	group.POST("/like-letter", ctrl.LikeLetter)
	group.POST("/flag-letter", ctrl.FlagLetter)
	group.GET("/wall", ctrl.GetWall)
	group.GET("/letters/:letter_id", ctrl.GetLetter)
}
