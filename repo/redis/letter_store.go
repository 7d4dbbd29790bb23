package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/letter_service/constant"
	"github.com/Xushengqwer/letter_service/models/entities"
	"github.com/Xushengqwer/letter_service/myErrors"
	"github.com/Xushengqwer/letter_service/repo"
)

// letterStoreImpl 是 repo.LetterStore 的 Redis 实现。
// 数据布局见 constant/redisKeys.go: 详情 Hash + 两个排序 ZSet + 点赞/举报 Set。
type letterStoreImpl struct {
	redisClient *redis.Client
	logger      *core.ZapLogger
}

// NewLetterStore 构造 Redis 后端的家书存储。
func NewLetterStore(redisClient *redis.Client, logger *core.ZapLogger) repo.LetterStore {
	return &letterStoreImpl{
		redisClient: redisClient,
		logger:      logger,
	}
}

// Share 实现分享落库。
// 详情 Hash 与两个索引 ZSet 的写入放在一个 TxPipeline 里，保证不会出现
// 索引里有 ID 而详情缺失（或反之）的部分写入。
func (s *letterStoreImpl) Share(ctx context.Context, content, parentRole, childName string, isAnonymous bool) (*entities.SharedLetter, error) {
	letter := repo.NewSharedLetter(content, parentRole, childName, isAnonymous)

	_, err := s.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, constant.LetterKey(letter.ID), letter.ToHashFields())
		pipe.ZAdd(ctx, constant.RecentLettersKey, redis.Z{
			Score:  float64(letter.Timestamp),
			Member: letter.ID,
		})
		pipe.ZAdd(ctx, constant.PopularLettersKey, redis.Z{
			Score:  0,
			Member: letter.ID,
		})
		return nil
	})
	if err != nil {
		s.logger.Error("分享家书写入 Redis 失败",
			zap.Error(err),
			zap.String("letterID", letter.ID),
		)
		return nil, fmt.Errorf("%w: 分享家书(ID: %s)失败: %v", myErrors.ErrStoreWrite, letter.ID, err)
	}

	s.logger.Debug("家书已分享到展示墙",
		zap.String("letterID", letter.ID),
		zap.Bool("isAnonymous", isAnonymous),
	)
	return letter, nil
}

// List 实现展示墙分页读取。
// 1. 从对应 ZSet 按分数倒序取 [offset, offset+limit-1] 的 ID;
// 2. 逐个 HGetAll 取详情，缺失或损坏的记录跳过，不让整页失败。
func (s *letterStoreImpl) List(ctx context.Context, sortBy repo.SortBy, limit, offset int) ([]*entities.SharedLetter, error) {
	indexKey := constant.RecentLettersKey
	if sortBy == repo.SortByPopular {
		indexKey = constant.PopularLettersKey
	}

	if limit <= 0 || offset < 0 {
		return []*entities.SharedLetter{}, nil
	}
	start := int64(offset)
	stop := start + int64(limit) - 1

	ids, err := s.redisClient.ZRevRange(ctx, indexKey, start, stop).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// ZSet 不存在或范围为空，视为空页而不是错误。
			return []*entities.SharedLetter{}, nil
		}
		s.logger.Error("读取展示墙索引失败",
			zap.Error(err),
			zap.String("indexKey", indexKey),
			zap.Int64("start", start),
			zap.Int64("stop", stop),
		)
		return nil, fmt.Errorf("%w: 读取索引(key: %s)失败: %v", myErrors.ErrStoreRead, indexKey, err)
	}
	if len(ids) == 0 {
		return []*entities.SharedLetter{}, nil
	}

	letters := make([]*entities.SharedLetter, 0, len(ids))
	skipped := 0
	for _, id := range ids {
		fields, getErr := s.redisClient.HGetAll(ctx, constant.LetterKey(id)).Result()
		if getErr != nil {
			// 单条详情读取失败属于存储层故障，整页失败比悄悄丢数据更可取。
			s.logger.Error("读取家书详情失败",
				zap.Error(getErr),
				zap.String("letterID", id),
			)
			return nil, fmt.Errorf("%w: 读取家书(ID: %s)详情失败: %v", myErrors.ErrStoreRead, id, getErr)
		}

		letter, parseErr := entities.SharedLetterFromHash(fields)
		if parseErr != nil {
			// 数据损坏只跳过这一条，记录告警待人工处理。
			s.logger.Warn("家书详情数据损坏，已跳过",
				zap.Error(parseErr),
				zap.String("letterID", id),
			)
			skipped++
			continue
		}
		if letter == nil {
			// 索引里有 ID 但详情缺失（例如与删除竞争），静默跳过。
			skipped++
			continue
		}
		letters = append(letters, letter)
	}

	if skipped > 0 {
		s.logger.Debug("展示墙列表存在被跳过的记录",
			zap.String("indexKey", indexKey),
			zap.Int("requested", len(ids)),
			zap.Int("skipped", skipped),
		)
	}
	return letters, nil
}

// Get 实现按 ID 读取详情。
func (s *letterStoreImpl) Get(ctx context.Context, letterID string) (*entities.SharedLetter, error) {
	fields, err := s.redisClient.HGetAll(ctx, constant.LetterKey(letterID)).Result()
	if err != nil {
		s.logger.Error("读取家书详情失败",
			zap.Error(err),
			zap.String("letterID", letterID),
		)
		return nil, fmt.Errorf("%w: 读取家书(ID: %s)失败: %v", myErrors.ErrStoreRead, letterID, err)
	}

	letter, parseErr := entities.SharedLetterFromHash(fields)
	if parseErr != nil {
		return nil, fmt.Errorf("%w: 解析家书(ID: %s)数据失败: %v", myErrors.ErrStoreRead, letterID, parseErr)
	}
	if letter == nil {
		return nil, myErrors.ErrLetterNotFound
	}
	return letter, nil
}

// Like 实现按会话去重的点赞。
//
// 并发约束: 会员检查与计数自增不能写成独立的 check-then-act，
// 这里用 SADD 的"新增成员数"返回值作为唯一的判定点——Redis 对单 Key 操作
// 是串行化的，同一 (letterID, sessionID) 的并发重复请求只有一个会看到 1。
// 热门索引的 ZADD 重排不与自增同一事务，排名允许滞后一拍（最终一致），
// 但 likes 计数由 HINCRBY 保证不丢不重。
func (s *letterStoreImpl) Like(ctx context.Context, letterID, sessionID string) (*repo.LikeResult, error) {
	// 先确认家书存在，避免给不存在的 ID 留下孤儿点赞集合。
	exists, err := s.redisClient.Exists(ctx, constant.LetterKey(letterID)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: 检查家书(ID: %s)是否存在失败: %v", myErrors.ErrStoreRead, letterID, err)
	}
	if exists == 0 {
		return nil, myErrors.ErrLetterNotFound
	}

	added, err := s.redisClient.SAdd(ctx, constant.LetterLikersKey(letterID), sessionID).Result()
	if err != nil {
		s.logger.Error("写入点赞会话集合失败",
			zap.Error(err),
			zap.String("letterID", letterID),
		)
		return nil, fmt.Errorf("%w: 点赞家书(ID: %s)失败: %v", myErrors.ErrStoreWrite, letterID, err)
	}

	if added == 0 {
		// 该会话已点过赞，读取当前计数原样返回，不做任何变更。
		likes, getErr := s.redisClient.HGet(ctx, constant.LetterKey(letterID), entities.FieldLikes).Int64()
		if getErr != nil && !errors.Is(getErr, redis.Nil) {
			return nil, fmt.Errorf("%w: 读取家书(ID: %s)点赞数失败: %v", myErrors.ErrStoreRead, letterID, getErr)
		}
		return &repo.LikeResult{Success: false, Likes: likes, AlreadyLiked: true}, nil
	}

	newLikes, err := s.redisClient.HIncrBy(ctx, constant.LetterKey(letterID), entities.FieldLikes, 1).Result()
	if err != nil {
		s.logger.Error("递增家书点赞数失败",
			zap.Error(err),
			zap.String("letterID", letterID),
		)
		return nil, fmt.Errorf("%w: 递增家书(ID: %s)点赞数失败: %v", myErrors.ErrStoreWrite, letterID, err)
	}

	// 用 HINCRBY 的返回值直接作为新分数，避免读后写的竞态窗口。
	if zErr := s.redisClient.ZAdd(ctx, constant.PopularLettersKey, redis.Z{
		Score:  float64(newLikes),
		Member: letterID,
	}).Err(); zErr != nil {
		// 计数已成功递增，排名滞后可接受；记录告警，下次点赞会重新对齐。
		s.logger.Warn("更新热门索引分数失败，排名将短暂滞后",
			zap.Error(zErr),
			zap.String("letterID", letterID),
			zap.Int64("likes", newLikes),
		)
	}

	return &repo.LikeResult{Success: true, Likes: newLikes, AlreadyLiked: false}, nil
}

// HasLiked 查询某会话是否已点赞过。
func (s *letterStoreImpl) HasLiked(ctx context.Context, letterID, sessionID string) (bool, error) {
	liked, err := s.redisClient.SIsMember(ctx, constant.LetterLikersKey(letterID), sessionID).Result()
	if err != nil {
		return false, fmt.Errorf("%w: 查询家书(ID: %s)点赞状态失败: %v", myErrors.ErrStoreRead, letterID, err)
	}
	return liked, nil
}

// Flag 将家书加入举报集合。重复举报是幂等的。
func (s *letterStoreImpl) Flag(ctx context.Context, letterID string) error {
	if err := s.redisClient.SAdd(ctx, constant.FlaggedLettersKey, letterID).Err(); err != nil {
		s.logger.Error("写入举报集合失败",
			zap.Error(err),
			zap.String("letterID", letterID),
		)
		return fmt.Errorf("%w: 举报家书(ID: %s)失败: %v", myErrors.ErrStoreWrite, letterID, err)
	}
	return nil
}

// FlagCount 读取举报计数。
// 举报集合只记录"是否被举报过"，所以结果是 0 或 1，与原有语义保持一致。
func (s *letterStoreImpl) FlagCount(ctx context.Context, letterID string) (int64, error) {
	flagged, err := s.redisClient.SIsMember(ctx, constant.FlaggedLettersKey, letterID).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: 读取家书(ID: %s)举报计数失败: %v", myErrors.ErrStoreRead, letterID, err)
	}
	if flagged {
		return 1, nil
	}
	return 0, nil
}
