package config

// RedisConfig 包含 Redis 连接配置。
// - Address 为空时服务自动退化为进程内内存存储（开发/降级模式，重启即丢，
//   不适合生产持久化），main 会用 Warn 级别日志明示这一点。
type RedisConfig struct {
	Address  string `mapstructure:"address" json:"address" yaml:"address"`    // host:port，空表示未配置
	Password string `mapstructure:"password" json:"password" yaml:"password"` // 可为空
	DB       int    `mapstructure:"db" json:"db" yaml:"db"`
}

// Enabled 返回是否配置了可用的 Redis 后端。
func (c *RedisConfig) Enabled() bool {
	return c.Address != ""
}
