package config

// RateLimitConfig 包含分享写路径的限流配置。
// 限流状态是进程内的，多实例水平扩展时各实例独立计数，
// 只能提供尽力而为的保护，不能当作安全边界。
type RateLimitConfig struct {
	// MaxShares 是单个客户端 IP 在窗口内允许的分享次数。
	MaxShares int `mapstructure:"maxShares" json:"maxShares" yaml:"maxShares"`

	// WindowSeconds 是滑动窗口长度（秒）。
	WindowSeconds int `mapstructure:"windowSeconds" json:"windowSeconds" yaml:"windowSeconds"`
}

// 限流默认值：每小时最多 3 次分享，与产品侧约定一致。
const (
	DefaultMaxShares     = 3
	DefaultWindowSeconds = 3600
)

// MaxSharesOrDefault 返回配置值，未配置时回落到默认值。
func (c *RateLimitConfig) MaxSharesOrDefault() int {
	if c.MaxShares <= 0 {
		return DefaultMaxShares
	}
	return c.MaxShares
}

// WindowSecondsOrDefault 返回配置值，未配置时回落到默认值。
func (c *RateLimitConfig) WindowSecondsOrDefault() int {
	if c.WindowSeconds <= 0 {
		return DefaultWindowSeconds
	}
	return c.WindowSeconds
}
