package memstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	commonConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"

	"github.com/Xushengqwer/letter_service/constant"
	"github.com/Xushengqwer/letter_service/myErrors"
	"github.com/Xushengqwer/letter_service/repo"
)

// newTestStore 构造挂在测试 logger 上的内存存储。
func newTestStore(t *testing.T) *Store {
	t.Helper()
	logger, err := core.NewZapLogger(commonConfig.ZapConfig{Level: "error"})
	if err != nil {
		t.Fatalf("初始化测试 logger 失败: %v", err)
	}
	return NewStore(logger)
}

// TestShareAndGet 分享后按 ID 能读回完整记录。
func TestShareAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	letter, err := store.Share(ctx, "亲爱的孩子，爸爸有话想对你说。", "爸爸", "小明", false)
	if err != nil {
		t.Fatalf("Share 失败: %v", err)
	}
	if letter.ID == "" {
		t.Fatal("分享后应生成非空 ID")
	}
	if letter.Likes != 0 {
		t.Fatalf("新分享的点赞数 = %d, want 0", letter.Likes)
	}

	got, err := store.Get(ctx, letter.ID)
	if err != nil {
		t.Fatalf("Get 失败: %v", err)
	}
	if got.Content != letter.Content || got.ParentRole != "爸爸" || got.ChildName != "小明" {
		t.Fatalf("读回的记录与写入不一致: %+v", got)
	}
}

// TestShareAnonymous 匿名分享在落库时替换署名。
func TestShareAnonymous(t *testing.T) {
	store := newTestStore(t)

	letter, err := store.Share(context.Background(), "亲爱的孩子，妈妈有话想对你说。", "妈妈", "小红", true)
	if err != nil {
		t.Fatalf("Share 失败: %v", err)
	}
	if letter.ParentRole != constant.AnonymousParentRole {
		t.Fatalf("匿名分享的角色 = %q, want %q", letter.ParentRole, constant.AnonymousParentRole)
	}
	if letter.ChildName != constant.AnonymousChildName {
		t.Fatalf("匿名分享的称呼 = %q, want %q", letter.ChildName, constant.AnonymousChildName)
	}
	if !letter.IsAnonymous {
		t.Fatal("IsAnonymous 标记丢失")
	}
}

// TestGetNotFound 不存在的 ID 返回 ErrLetterNotFound。
func TestGetNotFound(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.Get(context.Background(), "no-such-id"); !errors.Is(err, myErrors.ErrLetterNotFound) {
		t.Fatalf("Get 不存在的 ID 应返回 ErrLetterNotFound, got %v", err)
	}
}

// TestListRecentOrder 最新排序按插入序倒排，新的在前。
func TestListRecentOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	a, _ := store.Share(ctx, "第一封家书的正文内容。", "爸爸", "小明", false)
	b, _ := store.Share(ctx, "第二封家书的正文内容。", "妈妈", "小红", false)
	c, _ := store.Share(ctx, "第三封家书的正文内容。", "爷爷", "小刚", false)

	letters, err := store.List(ctx, repo.SortByRecent, 10, 0)
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}
	if len(letters) != 3 {
		t.Fatalf("List 返回 %d 条, want 3", len(letters))
	}
	wantOrder := []string{c.ID, b.ID, a.ID}
	for i, want := range wantOrder {
		if letters[i].ID != want {
			t.Fatalf("最新排序第 %d 位 = %s, want %s", i, letters[i].ID, want)
		}
	}
}

// TestListPopularOrder 最热排序按点赞数降序，同分先入在前。
func TestListPopularOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	a, _ := store.Share(ctx, "第一封家书的正文内容。", "爸爸", "小明", false)
	b, _ := store.Share(ctx, "第二封家书的正文内容。", "妈妈", "小红", false)
	c, _ := store.Share(ctx, "第三封家书的正文内容。", "爷爷", "小刚", false)

	// b 得 2 赞，a 得 1 赞，c 无赞。
	for i, id := range []string{b.ID, b.ID, a.ID} {
		if _, err := store.Like(ctx, id, fmt.Sprintf("session-%d", i)); err != nil {
			t.Fatalf("Like 失败: %v", err)
		}
	}

	letters, err := store.List(ctx, repo.SortByPopular, 10, 0)
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}
	wantOrder := []string{b.ID, a.ID, c.ID}
	for i, want := range wantOrder {
		if letters[i].ID != want {
			t.Fatalf("最热排序第 %d 位 = %s, want %s", i, letters[i].ID, want)
		}
	}
}

// TestListPagination 分页窗口与越界偏移。
func TestListPagination(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := store.Share(ctx, fmt.Sprintf("第 %d 封家书的正文内容。", i), "爸爸", "小明", false); err != nil {
			t.Fatalf("Share 失败: %v", err)
		}
	}

	page, err := store.List(ctx, repo.SortByRecent, 2, 2)
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("第二页返回 %d 条, want 2", len(page))
	}

	tail, err := store.List(ctx, repo.SortByRecent, 2, 4)
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}
	if len(tail) != 1 {
		t.Fatalf("末页返回 %d 条, want 1", len(tail))
	}

	empty, err := store.List(ctx, repo.SortByRecent, 2, 100)
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("越界偏移应返回空页, got %d 条", len(empty))
	}
}

// TestLikeIdempotent 同一会话重复点赞不改变计数。
func TestLikeIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	letter, _ := store.Share(ctx, "一封等待被点赞的家书正文。", "爸爸", "小明", false)

	first, err := store.Like(ctx, letter.ID, "session-1")
	if err != nil {
		t.Fatalf("Like 失败: %v", err)
	}
	if !first.Success || first.AlreadyLiked || first.Likes != 1 {
		t.Fatalf("首次点赞结果异常: %+v", first)
	}

	second, err := store.Like(ctx, letter.ID, "session-1")
	if err != nil {
		t.Fatalf("重复 Like 失败: %v", err)
	}
	if second.Success || !second.AlreadyLiked || second.Likes != 1 {
		t.Fatalf("重复点赞结果异常: %+v", second)
	}

	liked, err := store.HasLiked(ctx, letter.ID, "session-1")
	if err != nil || !liked {
		t.Fatalf("HasLiked = (%v, %v), want (true, nil)", liked, err)
	}
}

// TestLikeNotFound 给不存在的家书点赞返回 ErrLetterNotFound。
func TestLikeNotFound(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.Like(context.Background(), "no-such-id", "s1"); !errors.Is(err, myErrors.ErrLetterNotFound) {
		t.Fatalf("want ErrLetterNotFound, got %v", err)
	}
}

// TestLikeConcurrentDistinctSessions N 个不同会话并发点赞，计数精确等于 N。
func TestLikeConcurrentDistinctSessions(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	letter, _ := store.Share(ctx, "一封被并发点赞的家书正文。", "爸爸", "小明", false)

	const sessions = 50
	var wg sync.WaitGroup
	for i := 0; i < sessions; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if _, err := store.Like(ctx, letter.ID, fmt.Sprintf("session-%d", n)); err != nil {
				t.Errorf("并发 Like 失败: %v", err)
			}
		}(i)
	}
	wg.Wait()

	got, err := store.Get(ctx, letter.ID)
	if err != nil {
		t.Fatalf("Get 失败: %v", err)
	}
	if got.Likes != sessions {
		t.Fatalf("并发点赞后计数 = %d, want %d", got.Likes, sessions)
	}
}

// TestLikeConcurrentSameSession 同一会话并发重复点赞至多计入一次。
func TestLikeConcurrentSameSession(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	letter, _ := store.Share(ctx, "一封被同一会话反复点赞的家书。", "妈妈", "小红", false)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Like(ctx, letter.ID, "same-session")
		}()
	}
	wg.Wait()

	got, _ := store.Get(ctx, letter.ID)
	if got.Likes != 1 {
		t.Fatalf("同一会话并发点赞后计数 = %d, want 1", got.Likes)
	}
}

// TestFlagAndFlagCount 举报集合的标注语义。
func TestFlagAndFlagCount(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	letter, _ := store.Share(ctx, "一封即将被举报的家书正文。", "爸爸", "小明", false)

	count, err := store.FlagCount(ctx, letter.ID)
	if err != nil || count != 0 {
		t.Fatalf("未举报时 FlagCount = (%d, %v), want (0, nil)", count, err)
	}

	if err := store.Flag(ctx, letter.ID); err != nil {
		t.Fatalf("Flag 失败: %v", err)
	}
	// 重复举报幂等。
	if err := store.Flag(ctx, letter.ID); err != nil {
		t.Fatalf("重复 Flag 失败: %v", err)
	}

	count, err = store.FlagCount(ctx, letter.ID)
	if err != nil || count != 1 {
		t.Fatalf("举报后 FlagCount = (%d, %v), want (1, nil)", count, err)
	}
}

// TestRecentIndexCap 最新索引超过上限后旧 ID 滑出，但详情仍可访问。
func TestRecentIndexCap(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, _ := store.Share(ctx, "最早的一封家书，会滑出最新索引。", "爸爸", "小明", false)
	for i := 0; i < maxRecentEntries; i++ {
		if _, err := store.Share(ctx, fmt.Sprintf("第 %d 封填充索引的家书正文。", i), "妈妈", "小红", false); err != nil {
			t.Fatalf("Share 失败: %v", err)
		}
	}

	letters, err := store.List(ctx, repo.SortByRecent, maxRecentEntries+10, 0)
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}
	if len(letters) != maxRecentEntries {
		t.Fatalf("最新索引长度 = %d, want %d", len(letters), maxRecentEntries)
	}
	for _, l := range letters {
		if l.ID == first.ID {
			t.Fatal("最早的家书应已滑出最新索引")
		}
	}

	// 详情仍在。
	if _, err := store.Get(ctx, first.ID); err != nil {
		t.Fatalf("滑出索引的家书详情应仍可访问: %v", err)
	}
}
