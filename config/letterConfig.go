package config

import "github.com/Xushengqwer/go-common/config"

// LetterConfig 是服务的聚合配置，由 core.LoadConfig 从 yaml 文件与环境变量加载。
type LetterConfig struct {
	ZapConfig        config.ZapConfig    `mapstructure:"zapConfig" json:"zapConfig" yaml:"zapConfig"`
	ServerConfig     config.ServerConfig `mapstructure:"serverConfig" json:"serverConfig" yaml:"serverConfig"`
	TracerConfig     config.TracerConfig `mapstructure:"tracerConfig" json:"tracerConfig" yaml:"tracerConfig"`
	RedisConfig      RedisConfig         `mapstructure:"redisConfig" json:"redisConfig" yaml:"redisConfig"`
	KafkaConfig      KafkaConfig         `mapstructure:"kafkaConfig" json:"kafkaConfig" yaml:"kafkaConfig"`
	LLMConfig        LLMConfig           `mapstructure:"llmConfig" json:"llmConfig" yaml:"llmConfig"`
	RateLimitConfig  RateLimitConfig     `mapstructure:"rateLimitConfig" json:"rateLimitConfig" yaml:"rateLimitConfig"`
	ModerationConfig ModerationConfig    `mapstructure:"moderationConfig" json:"moderationConfig" yaml:"moderationConfig"`
}
