package constant

// 服务标识，用于链路追踪与日志。
const (
	ServiceName    = "letter_service"
	ServiceVersion = "1.0.0"
)

// RateLimitSweepCronSpec 是限流器过期记录清理任务的调度表达式。
// 清理只回收窗口内已无任何记录的 Key，频率不需要很高。
const RateLimitSweepCronSpec = "@every 10m"

// 匿名分享时写入存储的占位身份。
// 注意: 匿名化在分享落库时完成且不可逆，不是展示层的过滤。
const (
	AnonymousParentRole = "一位父母"
	AnonymousChildName  = "宝贝"
)
