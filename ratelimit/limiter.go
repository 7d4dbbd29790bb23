package ratelimit

import (
	"sync"
	"time"
)

// Result 是一次限流判定的结果。
type Result struct {
	Allowed   bool // 本次请求是否放行
	Remaining int  // 窗口内剩余可用次数；拒绝时为 0
}

// SlidingWindowLimiter 是进程内的滑动窗口限流器，按 Key（通常是客户端 IP）记录请求时间戳。
//
// 共享资源说明:
//   - 状态只存在于当前进程，重启即清零，也不会在多实例之间共享；
//     水平扩展会让每个实例独立计数。它只提供尽力而为的保护，
//     调用方不能把它当作硬性的安全边界。
//   - Key 的数量没有上限，需要配合 Sweep 周期性回收窗口外的 Key。
type SlidingWindowLimiter struct {
	mu       sync.Mutex
	requests map[string][]int64 // Key -> 窗口内的请求时间戳（毫秒，升序）

	// now 可注入，便于测试推进时间。
	now func() time.Time
}

// NewSlidingWindowLimiter 构造一个空的限流器。
func NewSlidingWindowLimiter() *SlidingWindowLimiter {
	return &SlidingWindowLimiter{
		requests: make(map[string][]int64),
		now:      time.Now,
	}
}

// Check 对指定 Key 做一次滑动窗口判定。
//   - 先丢弃窗口外的历史时间戳（滑动窗口，而不是固定分桶）。
//   - 若窗口内已满 maxRequests 次，拒绝且不记录本次尝试，Remaining 为 0。
//   - 否则记录本次请求时间并放行，Remaining = maxRequests - 窗口内已用次数。
func (l *SlidingWindowLimiter) Check(key string, maxRequests int, window time.Duration) Result {
	nowMs := l.now().UnixMilli()
	windowStart := nowMs - window.Milliseconds()

	l.mu.Lock()
	defer l.mu.Unlock()

	history := l.requests[key]
	kept := history[:0]
	for _, ts := range history {
		if ts > windowStart {
			kept = append(kept, ts)
		}
	}

	if len(kept) >= maxRequests {
		l.requests[key] = kept
		return Result{Allowed: false, Remaining: 0}
	}

	kept = append(kept, nowMs)
	l.requests[key] = kept
	return Result{Allowed: true, Remaining: maxRequests - len(kept)}
}

// Sweep 回收窗口内已无任何记录的 Key，抑制 Key 基数的无界增长。
// 与 Check 并发调用是安全的（同一把锁）。
func (l *SlidingWindowLimiter) Sweep(window time.Duration) int {
	windowStart := l.now().UnixMilli() - window.Milliseconds()

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, history := range l.requests {
		alive := false
		for _, ts := range history {
			if ts > windowStart {
				alive = true
				break
			}
		}
		if !alive {
			delete(l.requests, key)
			removed++
		}
	}
	return removed
}

// KeyCount 返回当前记录的 Key 数量，主要用于观测与测试。
func (l *SlidingWindowLimiter) KeyCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.requests)
}

// SetNowFunc 注入自定义时钟，仅用于测试。
func (l *SlidingWindowLimiter) SetNowFunc(now func() time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
}
