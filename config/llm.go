package config

// LLMConfig 包含上游大模型供应商的调用配置。
// - APIKey 与 Model 缺一不可，缺失时客户端在发起网络调用前就以配置错误失败。
// - BaseURL 可选，默认指向火山方舟的 OpenAI 兼容端点。
type LLMConfig struct {
	// APIKey 是供应商下发的 Bearer Token。
	APIKey string `mapstructure:"apiKey" json:"apiKey" yaml:"apiKey"`

	// Model 是供应商侧的模型标识（例如接入点 ID）。
	Model string `mapstructure:"model" json:"model" yaml:"model"`

	// BaseURL 覆盖默认的 API 根地址，末尾不带斜杠。
	// 为空时使用 DefaultLLMBaseURL。
	BaseURL string `mapstructure:"baseURL" json:"baseURL" yaml:"baseURL"`

	// TimeoutSeconds 是阻塞式生成的整体超时（秒），0 表示使用默认 60 秒。
	// 超时对该次请求是致命的，组件内部不做自动重试。
	TimeoutSeconds int `mapstructure:"timeoutSeconds" json:"timeoutSeconds" yaml:"timeoutSeconds"`
}

// DefaultLLMBaseURL 是未显式配置 BaseURL 时使用的供应商根地址。
const DefaultLLMBaseURL = "https://ark.cn-beijing.volces.com/api/v3"
