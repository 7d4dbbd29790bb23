package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/letter_service/config"
	"github.com/Xushengqwer/letter_service/myErrors"
)

// defaultTimeout 是阻塞式生成的整体超时。超时即该次请求失败，组件内不重试。
const defaultTimeout = 60 * time.Second

// maxLogPayloadBytes 限制诊断日志里原始响应体的长度，避免日志过长。
const maxLogPayloadBytes = 1024

// Client 封装对上游大模型供应商 chat/completions 端点的调用。
// 提供阻塞式与流式两种生成模式，两者共用提示词构造与多结构解析逻辑。
type Client struct {
	cfg    appConfig.LLMConfig
	logger *core.ZapLogger

	// blockingClient 带整体超时，用于一次性返回完整家书。
	blockingClient *http.Client
	// streamClient 不设整体超时（流的寿命由消费方决定），只靠连接生命周期约束。
	streamClient *http.Client
}

// NewClient 构造大模型客户端。
// transport 可传入 otelhttp 等带埋点的 RoundTripper，nil 时使用默认 Transport。
func NewClient(cfg appConfig.LLMConfig, transport http.RoundTripper, logger *core.ZapLogger) *Client {
	if transport == nil {
		transport = http.DefaultTransport
	}
	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	return &Client{
		cfg:            cfg,
		logger:         logger,
		blockingClient: &http.Client{Transport: transport, Timeout: timeout},
		streamClient:   &http.Client{Transport: transport},
	}
}

// checkConfig 做发起网络调用前的快速失败检查。
func (c *Client) checkConfig() error {
	if c.cfg.APIKey == "" {
		return fmt.Errorf("%w: 未配置上游 API Key", myErrors.ErrConfiguration)
	}
	if c.cfg.Model == "" {
		return fmt.Errorf("%w: 未配置上游模型标识", myErrors.ErrConfiguration)
	}
	return nil
}

// endpoint 返回 chat/completions 的完整地址。
func (c *Client) endpoint() string {
	base := c.cfg.BaseURL
	if base == "" {
		base = appConfig.DefaultLLMBaseURL
	}
	return strings.TrimRight(base, "/") + "/chat/completions"
}

// newRequest 构造一次生成请求。stream 控制上游是否按事件流返回。
func (c *Client) newRequest(ctx context.Context, prompt string, stream bool) (*http.Request, error) {
	body := map[string]interface{}{
		"model": c.cfg.Model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
		"max_tokens":  500,
		"temperature": 0.8,
		"stream":      stream,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("序列化生成请求失败: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("创建生成请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	return req, nil
}

// Generate 阻塞式生成一封完整家书。
// 依次尝试所有已知的响应结构，取第一个非空文本；全部未命中时以
// ErrUpstreamFormat 失败，原始负载只进诊断日志，不返回给最终用户。
func (c *Client) Generate(ctx context.Context, parentInput, parentRole, childName string) (string, error) {
	if err := c.checkConfig(); err != nil {
		return "", err
	}

	req, err := c.newRequest(ctx, BuildPrompt(parentInput, parentRole, childName), false)
	if err != nil {
		return "", err
	}

	resp, err := c.blockingClient.Do(req)
	if err != nil {
		c.logger.Error("调用上游生成接口失败", zap.Error(err))
		return "", fmt.Errorf("%w: 调用上游失败: %v", myErrors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: 读取上游响应失败: %v", myErrors.ErrUpstream, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", c.mapHTTPError(resp.StatusCode, rawBody)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		c.logger.Error("上游响应不是合法 JSON",
			zap.Error(err),
			zap.ByteString("payload", truncate(rawBody)),
		)
		return "", fmt.Errorf("%w: 响应不是合法 JSON", myErrors.ErrUpstreamFormat)
	}

	letter := extractFirst(messageExtractors, payload)
	if letter == "" {
		// 原始负载留在服务端日志里供排查，不外泄给用户。
		c.logger.Error("上游响应结构无法识别，所有取值路径均未命中",
			zap.ByteString("payload", truncate(rawBody)),
		)
		return "", fmt.Errorf("%w: 未能从响应中取出家书文本", myErrors.ErrUpstreamFormat)
	}

	c.logger.Debug("家书生成成功", zap.Int("letterLength", len(letter)))
	return letter, nil
}

// GenerateStream 流式生成家书，每解析出一个文本片段就立刻回调 onChunk。
//
// 这是单趟、只进、不可重放的序列：需要完整文本的消费方要自行累积片段。
// onChunk 返回非 nil 错误表示消费方停止读取，生产方随之停止转发并关闭连接
// （背压即取消，没有额外的取消令牌）。单个畸形帧只记日志并跳过，
// 不会中断整个流；但在产生任何帧之前的上游 HTTP 错误会让整次调用失败。
func (c *Client) GenerateStream(ctx context.Context, parentInput, parentRole, childName string, onChunk func(chunk string) error) error {
	if err := c.checkConfig(); err != nil {
		return err
	}

	req, err := c.newRequest(ctx, BuildPrompt(parentInput, parentRole, childName), true)
	if err != nil {
		return err
	}

	resp, err := c.streamClient.Do(req)
	if err != nil {
		c.logger.Error("调用上游流式接口失败", zap.Error(err))
		return fmt.Errorf("%w: 调用上游失败: %v", myErrors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		rawBody, _ := io.ReadAll(resp.Body)
		return c.mapHTTPError(resp.StatusCode, rawBody)
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || !strings.HasPrefix(line, "data:") {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "[DONE]" {
			// 终止标记，流正常结束。
			return nil
		}

		var payload map[string]interface{}
		if err := json.Unmarshal([]byte(data), &payload); err != nil {
			c.logger.Warn("流式帧解析失败，已跳过",
				zap.Error(err),
				zap.String("frame", string(truncate([]byte(data)))),
			)
			continue
		}

		chunk := extractFirst(deltaExtractors, payload)
		if chunk == "" {
			continue
		}
		if err := onChunk(chunk); err != nil {
			c.logger.Debug("消费方停止读取，终止流式转发", zap.Error(err))
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: 读取事件流失败: %v", myErrors.ErrUpstream, err)
	}
	return nil
}

// mapHTTPError 把上游 HTTP 状态码映射为错误分类:
// 401 -> 凭证被拒, 404 -> 模型或端点配置错误, 5xx 及其余 -> 上游失败。
// 尽量带上供应商返回的错误消息，便于运维定位。
func (c *Client) mapHTTPError(status int, rawBody []byte) error {
	providerMsg := extractErrorMessage(rawBody)
	c.logger.Error("上游返回错误状态",
		zap.Int("status", status),
		zap.String("providerMessage", providerMsg),
		zap.ByteString("payload", truncate(rawBody)),
	)

	switch {
	case status == http.StatusUnauthorized:
		return fmt.Errorf("%w: 上游拒绝了 API 凭证 (HTTP 401)", myErrors.ErrAuthentication)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: 模型或端点不存在 (HTTP 404)", myErrors.ErrConfiguration)
	default:
		if providerMsg != "" {
			return fmt.Errorf("%w: 上游返回 HTTP %d: %s", myErrors.ErrUpstream, status, providerMsg)
		}
		return fmt.Errorf("%w: 上游返回 HTTP %d", myErrors.ErrUpstream, status)
	}
}

// extractErrorMessage 尽力从错误响应体里取出供应商的人类可读消息。
func extractErrorMessage(rawBody []byte) string {
	var payload map[string]interface{}
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return ""
	}
	if msg, ok := payload["message"].(string); ok && msg != "" {
		return msg
	}
	switch errVal := payload["error"].(type) {
	case string:
		return errVal
	case map[string]interface{}:
		if msg, ok := errVal["message"].(string); ok {
			return msg
		}
	}
	return ""
}

// truncate 截断诊断日志里的响应体。
func truncate(raw []byte) []byte {
	if len(raw) <= maxLogPayloadBytes {
		return raw
	}
	return raw[:maxLogPayloadBytes]
}
