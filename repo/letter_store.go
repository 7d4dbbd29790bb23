package repo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Xushengqwer/letter_service/constant"
	"github.com/Xushengqwer/letter_service/models/entities"
)

// SortBy 是展示墙列表的排序方式。
type SortBy string

const (
	SortByRecent  SortBy = "recent"  // 按分享时间倒序
	SortByPopular SortBy = "popular" // 按点赞数倒序
)

// LikeResult 是一次点赞操作的结果。
// AlreadyLiked 为 true 时本次未发生任何变更，Likes 为当前值；
// 否则 Likes 为自增后的新值。
type LikeResult struct {
	Success      bool
	Likes        int64
	AlreadyLiked bool
}

// LetterStore 定义了展示墙的数据访问接口。
// 两个实现: repo/redis 提供持久化后端，repo/memstore 提供进程内替代实现
// （Redis 未配置时自动启用，两者的排序语义保持一致，便于离开外部设施做测试）。
//
// 生命周期约束: 家书一经分享只会被点赞操作修改（likes 自增与热门索引重排），
// 不会被本核心编辑或删除；举报只是附加标注。
type LetterStore interface {
	// Share 生成 ID 与时间戳、按需做匿名化替换后落库，
	// 并把 ID 同时写入最新索引（分数=时间戳）与热门索引（分数=0）。
	// 任一写入无法完成时返回包装了 myErrors.ErrStoreWrite 的错误。
	Share(ctx context.Context, content, parentRole, childName string, isAnonymous bool) (*entities.SharedLetter, error)

	// List 从指定索引按分数倒序读取 [offset, offset+limit-1] 的家书。
	// 索引里存在但详情缺失的 ID 会被静默跳过，不会让整页失败；
	// 范围为空时返回空切片而不是错误。
	List(ctx context.Context, sortBy SortBy, limit, offset int) ([]*entities.SharedLetter, error)

	// Get 按 ID 取家书详情，不存在时返回 myErrors.ErrLetterNotFound。
	Get(ctx context.Context, letterID string) (*entities.SharedLetter, error)

	// Like 为家书点赞，按 sessionID 去重。
	// 同一会话的并发重复点赞至多计入一次；不同会话的并发点赞都会生效且计数不丢失。
	// 热门索引的重排允许短暂滞后，但 likes 计数本身必须精确。
	Like(ctx context.Context, letterID, sessionID string) (*LikeResult, error)

	// HasLiked 查询某会话是否已点赞过该家书。
	HasLiked(ctx context.Context, letterID, sessionID string) (bool, error)

	// Flag 将家书加入举报集合；FlagCount 读取举报计数。
	// 举报不触发重排或下架，处置由外部流程决定。
	Flag(ctx context.Context, letterID string) error
	FlagCount(ctx context.Context, letterID string) (int64, error)
}

// NewSharedLetter 构造一条待落库的家书记录: 生成不可变的 ID 与毫秒时间戳，
// 匿名分享时把署名替换为占位身份。替换发生在落库前且不可逆。
func NewSharedLetter(content, parentRole, childName string, isAnonymous bool) *entities.SharedLetter {
	if isAnonymous {
		parentRole = constant.AnonymousParentRole
		childName = constant.AnonymousChildName
	}
	return &entities.SharedLetter{
		ID:          uuid.New().String(),
		Content:     content,
		ParentRole:  parentRole,
		ChildName:   childName,
		Timestamp:   time.Now().UnixMilli(),
		Likes:       0,
		IsAnonymous: isAnonymous,
	}
}
