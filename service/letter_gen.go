package service

import (
	"context"
	"strings"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/letter_service/models/dto"
)

// CompletionClient 抽象上游大模型客户端，便于在测试里用桩实现替换。
// llm.Client 是其生产实现。
type CompletionClient interface {
	Generate(ctx context.Context, parentInput, parentRole, childName string) (string, error)
	GenerateStream(ctx context.Context, parentInput, parentRole, childName string, onChunk func(chunk string) error) error
}

// LetterGenService 承载家书生成的业务逻辑。
// 生成的家书只存在于请求生命周期内，除非用户随后显式分享。
type LetterGenService struct {
	client CompletionClient
	logger *core.ZapLogger
}

// NewLetterGenService 是 LetterGenService 的构造函数。
func NewLetterGenService(client CompletionClient, logger *core.ZapLogger) *LetterGenService {
	return &LetterGenService{
		client: client,
		logger: logger,
	}
}

// GenerateLetter 阻塞式生成一封完整家书。
func (s *LetterGenService) GenerateLetter(ctx context.Context, req *dto.GenerateLetterRequest) (string, error) {
	letter, err := s.client.Generate(
		ctx,
		strings.TrimSpace(req.ParentInput),
		strings.TrimSpace(req.ParentRole),
		strings.TrimSpace(req.ChildName),
	)
	if err != nil {
		s.logger.Error("生成家书失败", zap.Error(err))
		return "", err
	}
	return letter, nil
}

// GenerateLetterStream 流式生成家书，文本片段到达即回调 onChunk。
// 消费方通过让 onChunk 返回错误来停止生成（例如客户端断开连接）。
func (s *LetterGenService) GenerateLetterStream(ctx context.Context, req *dto.GenerateLetterRequest, onChunk func(chunk string) error) error {
	return s.client.GenerateStream(
		ctx,
		strings.TrimSpace(req.ParentInput),
		strings.TrimSpace(req.ParentRole),
		strings.TrimSpace(req.ChildName),
		onChunk,
	)
}
