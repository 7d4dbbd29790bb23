package service

import (
	"context"
	"strings"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/letter_service/models/dto"
	"github.com/Xushengqwer/letter_service/models/entities"
	"github.com/Xushengqwer/letter_service/models/vo"
	"github.com/Xushengqwer/letter_service/mq/producer"
	"github.com/Xushengqwer/letter_service/repo"
)

// LetterWallService 承载展示墙的业务逻辑: 分享、列表、点赞、举报。
// 内容校验与限流属于请求边界，由控制器在调用本服务前完成。
type LetterWallService struct {
	store         repo.LetterStore
	kafkaProducer *producer.KafkaProducer // 未配置 Kafka 时为 nil
	logger        *core.ZapLogger
}

// NewLetterWallService 是 LetterWallService 的构造函数。
func NewLetterWallService(
	store repo.LetterStore,
	kafkaProducer *producer.KafkaProducer,
	logger *core.ZapLogger,
) *LetterWallService {
	return &LetterWallService{
		store:         store,
		kafkaProducer: kafkaProducer,
		logger:        logger,
	}
}

// ShareLetter 把一封家书分享到展示墙。
// 落库成功后尽力发布分享事件供外部审核流程消费；事件发布失败不影响本次请求。
func (s *LetterWallService) ShareLetter(ctx context.Context, req *dto.ShareLetterRequest) (*entities.SharedLetter, error) {
	letter, err := s.store.Share(
		ctx,
		strings.TrimSpace(req.Content),
		strings.TrimSpace(req.ParentRole),
		strings.TrimSpace(req.ChildName),
		req.IsAnonymous,
	)
	if err != nil {
		return nil, err
	}

	if s.kafkaProducer != nil {
		if sendErr := s.kafkaProducer.SendLetterSharedEvent(ctx, letter); sendErr != nil {
			s.logger.Warn("分享事件发布失败，家书已正常落库",
				zap.Error(sendErr),
				zap.String("letterID", letter.ID),
			)
		}
	}
	return letter, nil
}

// GetWall 读取展示墙的一页家书。
// HasMore 用"返回条数等于 limit"近似判断，满足无限滚动场景。
func (s *LetterWallService) GetWall(ctx context.Context, query *dto.WallQueryDTO) (*vo.WallVO, error) {
	letters, err := s.store.List(ctx, repo.SortBy(query.Sort), query.Limit, query.Offset)
	if err != nil {
		return nil, err
	}
	return &vo.WallVO{
		Letters: letters,
		Sort:    query.Sort,
		HasMore: len(letters) == query.Limit,
	}, nil
}

// GetLetter 按 ID 读取单封家书。
func (s *LetterWallService) GetLetter(ctx context.Context, letterID string) (*entities.SharedLetter, error) {
	return s.store.Get(ctx, letterID)
}

// LikeLetter 为家书点赞，按会话去重；幂等性由存储层保证。
func (s *LetterWallService) LikeLetter(ctx context.Context, letterID, sessionID string) (*repo.LikeResult, error) {
	return s.store.Like(ctx, letterID, sessionID)
}

// FlagLetter 举报一封家书并返回当前举报计数。
// 举报只做标注，不会将家书移出任何索引；同样尽力发布举报事件。
func (s *LetterWallService) FlagLetter(ctx context.Context, letterID string) (int64, error) {
	if err := s.store.Flag(ctx, letterID); err != nil {
		return 0, err
	}

	if s.kafkaProducer != nil {
		if sendErr := s.kafkaProducer.SendLetterFlaggedEvent(ctx, letterID); sendErr != nil {
			s.logger.Warn("举报事件发布失败，举报已正常记录",
				zap.Error(sendErr),
				zap.String("letterID", letterID),
			)
		}
	}
	return s.store.FlagCount(ctx, letterID)
}
