package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/letter_service/config"
	"github.com/Xushengqwer/letter_service/models/entities"
	"github.com/Xushengqwer/letter_service/models/events"
)

// KafkaProducer 把展示墙的审核相关事件发布到 Kafka。
// 未配置 brokers 时服务以 nil 生产者运行，调用点需要自行判空。
type KafkaProducer struct {
	writer *kafka.Writer
	logger *core.ZapLogger
	topics config.Topics
}

// NewKafkaProducer 创建一个新的 Kafka 生产者实例。
func NewKafkaProducer(config config.KafkaConfig, logger *core.ZapLogger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(config.Brokers...),
		Balancer: &kafka.LeastBytes{},
	}
	return &KafkaProducer{
		writer: writer,
		logger: logger,
		topics: config.Topics,
	}
}

// SendEvent 发送事件到指定 Kafka 主题。
func (p *KafkaProducer) SendEvent(ctx context.Context, topic string, event interface{}) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("序列化事件失败", zap.Error(err), zap.String("topic", topic))
		return err
	}

	p.logger.Debug("发送 Kafka 消息",
		zap.String("topic", topic),
		zap.ByteString("payload", eventBytes))

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Value: eventBytes,
	})

	if err != nil {
		p.logger.Error("写入 Kafka 消息失败", zap.Error(err), zap.String("topic", topic))
	}
	return err
}

// SendLetterSharedEvent 在家书成功分享后发布事件，供外部审核服务消费。
// - 发布失败只记日志，不回滚已完成的存储写入。
func (p *KafkaProducer) SendLetterSharedEvent(ctx context.Context, letter *entities.SharedLetter) error {
	if p.topics.LetterShared == "" {
		return nil
	}
	event := events.LetterSharedEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		Letter: events.LetterEventData{
			LetterID:    letter.ID,
			Content:     letter.Content,
			ParentRole:  letter.ParentRole,
			ChildName:   letter.ChildName,
			IsAnonymous: letter.IsAnonymous,
			Timestamp:   letter.Timestamp,
		},
	}
	return p.SendEvent(ctx, p.topics.LetterShared, event)
}

// SendLetterFlaggedEvent 在家书被举报后发布事件。
func (p *KafkaProducer) SendLetterFlaggedEvent(ctx context.Context, letterID string) error {
	if p.topics.LetterFlagged == "" {
		return nil
	}
	event := events.LetterFlaggedEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		LetterID:  letterID,
	}
	return p.SendEvent(ctx, p.topics.LetterFlagged, event)
}

// Close 关闭底层 writer，优雅关停时调用。
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}
