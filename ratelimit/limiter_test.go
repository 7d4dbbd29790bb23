package ratelimit

import (
	"testing"
	"time"
)

// fakeClock 可手动推进的测试时钟。
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) now() time.Time { return c.current }

func (c *fakeClock) advance(d time.Duration) { c.current = c.current.Add(d) }

func newTestLimiter() (*SlidingWindowLimiter, *fakeClock) {
	clock := &fakeClock{current: time.UnixMilli(1_700_000_000_000)}
	limiter := NewSlidingWindowLimiter()
	limiter.SetNowFunc(clock.now)
	return limiter, clock
}

// TestCheckAllowsUpToMax 验证窗口内前 max 次放行且 Remaining 递减，第 max+1 次被拒。
func TestCheckAllowsUpToMax(t *testing.T) {
	limiter, _ := newTestLimiter()
	window := time.Hour

	for i := 0; i < 3; i++ {
		result := limiter.Check("1.2.3.4", 3, window)
		if !result.Allowed {
			t.Fatalf("第 %d 次请求应放行", i+1)
		}
		wantRemaining := 3 - (i + 1)
		if result.Remaining != wantRemaining {
			t.Fatalf("第 %d 次请求 Remaining = %d, want %d", i+1, result.Remaining, wantRemaining)
		}
	}

	result := limiter.Check("1.2.3.4", 3, window)
	if result.Allowed {
		t.Fatal("第 4 次请求应被拒绝")
	}
	if result.Remaining != 0 {
		t.Fatalf("拒绝时 Remaining = %d, want 0", result.Remaining)
	}
}

// TestCheckKeysAreIndependent 不同 Key 各自独立计数。
func TestCheckKeysAreIndependent(t *testing.T) {
	limiter, _ := newTestLimiter()
	window := time.Hour

	for i := 0; i < 3; i++ {
		limiter.Check("1.2.3.4", 3, window)
	}
	if result := limiter.Check("5.6.7.8", 3, window); !result.Allowed {
		t.Fatal("另一个 Key 的首次请求不应受影响")
	}
}

// TestCheckSlidingWindow 时间推过窗口后旧记录滑出，重新放行。
func TestCheckSlidingWindow(t *testing.T) {
	limiter, clock := newTestLimiter()
	window := time.Hour

	for i := 0; i < 3; i++ {
		limiter.Check("1.2.3.4", 3, window)
	}
	if result := limiter.Check("1.2.3.4", 3, window); result.Allowed {
		t.Fatal("窗口已满，应被拒绝")
	}

	// 推进超过窗口长度，历史全部滑出。
	clock.advance(window + time.Minute)
	result := limiter.Check("1.2.3.4", 3, window)
	if !result.Allowed {
		t.Fatal("窗口滑过后应重新放行")
	}
	if result.Remaining != 2 {
		t.Fatalf("滑出后 Remaining = %d, want 2", result.Remaining)
	}
}

// TestCheckRejectedAttemptNotRecorded 被拒绝的尝试不占用窗口。
// 如果拒绝也记账，持续重试的客户端会把自己永远锁在窗口外。
func TestCheckRejectedAttemptNotRecorded(t *testing.T) {
	limiter, clock := newTestLimiter()
	window := time.Hour

	for i := 0; i < 3; i++ {
		limiter.Check("1.2.3.4", 3, window)
	}
	// 半小时内不断重试，全部被拒。
	for i := 0; i < 10; i++ {
		clock.advance(3 * time.Minute)
		if result := limiter.Check("1.2.3.4", 3, window); result.Allowed {
			t.Fatal("窗口内的重试应被拒绝")
		}
	}
	// 距首次请求已超过一个窗口，此时应放行；若拒绝也写入了时间戳则会继续被拒。
	clock.advance(31 * time.Minute)
	if result := limiter.Check("1.2.3.4", 3, window); !result.Allowed {
		t.Fatal("原始记录滑出后应放行，被拒说明拒绝的尝试被记录了")
	}
}

// TestSweep 回收窗口外的 Key，保留仍活跃的 Key。
func TestSweep(t *testing.T) {
	limiter, clock := newTestLimiter()
	window := time.Hour

	limiter.Check("old.ip", 3, window)
	clock.advance(window + time.Minute)
	limiter.Check("fresh.ip", 3, window)

	removed := limiter.Sweep(window)
	if removed != 1 {
		t.Fatalf("Sweep 移除 %d 个 Key, want 1", removed)
	}
	if limiter.KeyCount() != 1 {
		t.Fatalf("Sweep 后剩余 %d 个 Key, want 1", limiter.KeyCount())
	}
}
