package config

// ModerationConfig 是内容校验相关的配置。
type ModerationConfig struct {
	// DenyWords 是敏感词列表，匹配方式为大小写不敏感的子串匹配。
	// 留空表示跳过敏感词检查，只做长度校验。
	DenyWords []string `mapstructure:"denyWords" json:"denyWords" yaml:"denyWords"`
}
