package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	appConfig "github.com/Xushengqwer/letter_service/config"
	"github.com/Xushengqwer/letter_service/constant"
	"github.com/Xushengqwer/letter_service/models/vo"
	"github.com/Xushengqwer/letter_service/moderation"
	"github.com/Xushengqwer/letter_service/ratelimit"
	"github.com/Xushengqwer/letter_service/repo/memstore"
	"github.com/Xushengqwer/letter_service/service"
)

// newWallRouter 搭建挂在内存存储上的展示墙测试路由。
func newWallRouter(t *testing.T, rateCfg appConfig.RateLimitConfig, denyWords []string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := testLogger(t)
	store := memstore.NewStore(logger)
	wallService := service.NewLetterWallService(store, nil, logger)

	ctrl := NewWallController(
		wallService,
		moderation.NewContentGate(moderation.SubstringDenylist(denyWords)),
		ratelimit.NewSlidingWindowLimiter(),
		rateCfg,
	)

	engine := gin.New()
	ctrl.RegisterRoutes(engine.Group("/api/v1/letter"))
	return engine
}

func defaultRateCfg() appConfig.RateLimitConfig {
	return appConfig.RateLimitConfig{MaxShares: 3, WindowSeconds: 3600}
}

// shareBody 一份合法的分享请求体。
func shareBody() map[string]interface{} {
	return map[string]interface{}{
		"content":     "亲爱的小明，爸爸在外面工作很想你，你要好好吃饭。",
		"parentRole":  "爸爸",
		"childName":   "小明",
		"isAnonymous": false,
	}
}

// TestShareLetterSuccess 分享成功返回落库记录与剩余次数。
func TestShareLetterSuccess(t *testing.T) {
	engine := newWallRouter(t, defaultRateCfg(), nil)

	recorder := postJSON(t, engine, "/api/v1/letter/share-letter", shareBody())
	if recorder.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, want 200, body=%s", recorder.Code, recorder.Body.String())
	}

	var resp vo.ShareLetterResponseWrapper
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("响应不是合法 JSON: %v", err)
	}
	if resp.Data.Letter == nil || resp.Data.Letter.ID == "" {
		t.Fatalf("分享应返回带 ID 的记录: %+v", resp.Data)
	}
	if resp.Data.Remaining != 2 {
		t.Fatalf("remaining = %d, want 2", resp.Data.Remaining)
	}
}

// TestShareLetterAnonymous 匿名分享返回的记录已替换署名。
func TestShareLetterAnonymous(t *testing.T) {
	engine := newWallRouter(t, defaultRateCfg(), nil)

	body := shareBody()
	body["isAnonymous"] = true
	recorder := postJSON(t, engine, "/api/v1/letter/share-letter", body)
	if recorder.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, want 200", recorder.Code)
	}

	var resp vo.ShareLetterResponseWrapper
	_ = json.Unmarshal(recorder.Body.Bytes(), &resp)
	if resp.Data.Letter.ParentRole != constant.AnonymousParentRole {
		t.Fatalf("匿名分享的角色 = %q", resp.Data.Letter.ParentRole)
	}
	if resp.Data.Letter.ChildName != constant.AnonymousChildName {
		t.Fatalf("匿名分享的称呼 = %q", resp.Data.Letter.ChildName)
	}
}

// TestShareLetterContentValidation 非法内容在落库前被拦下。
func TestShareLetterContentValidation(t *testing.T) {
	engine := newWallRouter(t, defaultRateCfg(), []string{"赌博"})

	cases := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"空内容", "   ", "家书内容不能为空"},
		{"内容过短", "太短了", "家书内容太短，至少需要10个字"},
		{"含敏感词", "亲爱的小明，不要去碰赌博那些东西。", "内容包含不当词汇，请修改后重试"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := shareBody()
			body["content"] = tc.content
			recorder := postJSON(t, engine, "/api/v1/letter/share-letter", body)
			if recorder.Code != http.StatusBadRequest {
				t.Fatalf("状态码 = %d, want 400", recorder.Code)
			}
			var resp vo.BaseResponseWrapper
			_ = json.Unmarshal(recorder.Body.Bytes(), &resp)
			if resp.Message != tc.wantMsg {
				t.Fatalf("message = %q, want %q", resp.Message, tc.wantMsg)
			}
		})
	}
}

// TestShareLetterRateLimited 超过窗口上限后返回 429，且被拒内容不落库。
func TestShareLetterRateLimited(t *testing.T) {
	engine := newWallRouter(t, appConfig.RateLimitConfig{MaxShares: 2, WindowSeconds: 3600}, nil)

	for i := 0; i < 2; i++ {
		if recorder := postJSON(t, engine, "/api/v1/letter/share-letter", shareBody()); recorder.Code != http.StatusOK {
			t.Fatalf("第 %d 次分享应成功, got %d", i+1, recorder.Code)
		}
	}

	recorder := postJSON(t, engine, "/api/v1/letter/share-letter", shareBody())
	if recorder.Code != http.StatusTooManyRequests {
		t.Fatalf("超限后的状态码 = %d, want 429", recorder.Code)
	}

	// 展示墙上仍然只有前两封。
	listReq := httptest.NewRequest(http.MethodGet, "/api/v1/letter/wall", nil)
	listRec := httptest.NewRecorder()
	engine.ServeHTTP(listRec, listReq)
	var wallResp vo.WallResponseWrapper
	_ = json.Unmarshal(listRec.Body.Bytes(), &wallResp)
	if len(wallResp.Data.Letters) != 2 {
		t.Fatalf("超限分享不应落库, 展示墙有 %d 封", len(wallResp.Data.Letters))
	}
}

// TestLikeLetterFlow 首次点赞成功，重复点赞幂等并返回对应文案。
func TestLikeLetterFlow(t *testing.T) {
	engine := newWallRouter(t, defaultRateCfg(), nil)

	shareRec := postJSON(t, engine, "/api/v1/letter/share-letter", shareBody())
	var shareResp vo.ShareLetterResponseWrapper
	_ = json.Unmarshal(shareRec.Body.Bytes(), &shareResp)
	letterID := shareResp.Data.Letter.ID

	likeBody := map[string]interface{}{"letterId": letterID, "sessionId": "session-1"}

	first := postJSON(t, engine, "/api/v1/letter/like-letter", likeBody)
	if first.Code != http.StatusOK {
		t.Fatalf("首次点赞状态码 = %d, want 200", first.Code)
	}
	var firstResp vo.LikeLetterResponseWrapper
	_ = json.Unmarshal(first.Body.Bytes(), &firstResp)
	if !firstResp.Data.Success || firstResp.Data.Likes != 1 || firstResp.Data.AlreadyLiked {
		t.Fatalf("首次点赞结果异常: %+v", firstResp.Data)
	}
	if firstResp.Data.Message != "您的心意已送达 💖" {
		t.Fatalf("首次点赞文案 = %q", firstResp.Data.Message)
	}

	second := postJSON(t, engine, "/api/v1/letter/like-letter", likeBody)
	var secondResp vo.LikeLetterResponseWrapper
	_ = json.Unmarshal(second.Body.Bytes(), &secondResp)
	if secondResp.Data.Success || secondResp.Data.Likes != 1 || !secondResp.Data.AlreadyLiked {
		t.Fatalf("重复点赞结果异常: %+v", secondResp.Data)
	}
	if secondResp.Data.Message != "您已经点过赞了" {
		t.Fatalf("重复点赞文案 = %q", secondResp.Data.Message)
	}
}

// TestLikeLetterValidation 缺参与不存在的家书。
func TestLikeLetterValidation(t *testing.T) {
	engine := newWallRouter(t, defaultRateCfg(), nil)

	recorder := postJSON(t, engine, "/api/v1/letter/like-letter", map[string]interface{}{"sessionId": "s1"})
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("缺少家书 ID 状态码 = %d, want 400", recorder.Code)
	}
	var resp vo.BaseResponseWrapper
	_ = json.Unmarshal(recorder.Body.Bytes(), &resp)
	if resp.Message != "缺少家书ID" {
		t.Fatalf("message = %q", resp.Message)
	}

	recorder = postJSON(t, engine, "/api/v1/letter/like-letter", map[string]interface{}{"letterId": "l1"})
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("缺少会话 ID 状态码 = %d, want 400", recorder.Code)
	}

	recorder = postJSON(t, engine, "/api/v1/letter/like-letter", map[string]interface{}{
		"letterId": "no-such-id", "sessionId": "s1",
	})
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("不存在家书的状态码 = %d, want 404", recorder.Code)
	}
}

// TestGetWall 默认最新排序，带缓存头；点赞后最热排序跟着变。
func TestGetWall(t *testing.T) {
	engine := newWallRouter(t, appConfig.RateLimitConfig{MaxShares: 10, WindowSeconds: 3600}, nil)

	var ids []string
	for i := 0; i < 3; i++ {
		rec := postJSON(t, engine, "/api/v1/letter/share-letter", shareBody())
		var resp vo.ShareLetterResponseWrapper
		_ = json.Unmarshal(rec.Body.Bytes(), &resp)
		ids = append(ids, resp.Data.Letter.ID)
	}

	// 给第二封点两个赞。
	for _, session := range []string{"s1", "s2"} {
		postJSON(t, engine, "/api/v1/letter/like-letter", map[string]interface{}{
			"letterId": ids[1], "sessionId": session,
		})
	}

	// 默认按最新。
	req := httptest.NewRequest(http.MethodGet, "/api/v1/letter/wall", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "public, s-maxage=60, stale-while-revalidate=30" {
		t.Fatalf("Cache-Control = %q", cc)
	}
	var recentResp vo.WallResponseWrapper
	_ = json.Unmarshal(rec.Body.Bytes(), &recentResp)
	if recentResp.Data.Sort != "recent" {
		t.Fatalf("默认排序 = %q, want recent", recentResp.Data.Sort)
	}
	if len(recentResp.Data.Letters) != 3 || recentResp.Data.Letters[0].ID != ids[2] {
		t.Fatalf("最新排序异常: %+v", recentResp.Data.Letters)
	}

	// 最热排序第二封在前。
	req = httptest.NewRequest(http.MethodGet, "/api/v1/letter/wall?sort=popular", nil)
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	var popularResp vo.WallResponseWrapper
	_ = json.Unmarshal(rec.Body.Bytes(), &popularResp)
	if popularResp.Data.Letters[0].ID != ids[1] {
		t.Fatalf("最热排序首位 = %s, want %s", popularResp.Data.Letters[0].ID, ids[1])
	}

	// 分页: limit=2 时 hasMore 为 true。
	req = httptest.NewRequest(http.MethodGet, "/api/v1/letter/wall?limit=2", nil)
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	var pageResp vo.WallResponseWrapper
	_ = json.Unmarshal(rec.Body.Bytes(), &pageResp)
	if len(pageResp.Data.Letters) != 2 || !pageResp.Data.HasMore {
		t.Fatalf("分页结果异常: %d 封, hasMore=%v", len(pageResp.Data.Letters), pageResp.Data.HasMore)
	}
}

// TestGetWallInvalidQuery 非法排序或分页参数返回 400。
func TestGetWallInvalidQuery(t *testing.T) {
	engine := newWallRouter(t, defaultRateCfg(), nil)

	for _, query := range []string{"?sort=newest", "?limit=0", "?limit=51", "?offset=-1"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/letter/wall"+query, nil)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("查询 %q 状态码 = %d, want 400", query, rec.Code)
		}
	}
}

// TestFlagLetter 举报后计数为 1，重复举报幂等。
func TestFlagLetter(t *testing.T) {
	engine := newWallRouter(t, defaultRateCfg(), nil)

	shareRec := postJSON(t, engine, "/api/v1/letter/share-letter", shareBody())
	var shareResp vo.ShareLetterResponseWrapper
	_ = json.Unmarshal(shareRec.Body.Bytes(), &shareResp)

	flagBody := map[string]interface{}{"letterId": shareResp.Data.Letter.ID}
	for i := 0; i < 2; i++ {
		rec := postJSON(t, engine, "/api/v1/letter/flag-letter", flagBody)
		if rec.Code != http.StatusOK {
			t.Fatalf("举报状态码 = %d, want 200", rec.Code)
		}
		var resp vo.FlagLetterResponseWrapper
		_ = json.Unmarshal(rec.Body.Bytes(), &resp)
		if resp.Data.FlagCount != 1 {
			t.Fatalf("flagCount = %d, want 1", resp.Data.FlagCount)
		}
	}

	rec := postJSON(t, engine, "/api/v1/letter/flag-letter", map[string]interface{}{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("缺少家书 ID 状态码 = %d, want 400", rec.Code)
	}
}

// TestGetLetterDetail 详情端点与 404。
func TestGetLetterDetail(t *testing.T) {
	engine := newWallRouter(t, defaultRateCfg(), nil)

	shareRec := postJSON(t, engine, "/api/v1/letter/share-letter", shareBody())
	var shareResp vo.ShareLetterResponseWrapper
	_ = json.Unmarshal(shareRec.Body.Bytes(), &shareResp)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/letter/letters/"+shareResp.Data.Letter.ID, nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("详情状态码 = %d, want 200", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/letter/letters/no-such-id", nil)
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("不存在详情的状态码 = %d, want 404", rec.Code)
	}
}
