// Package simulate 提供演示用的随机负载：这里没有真实业务，
// 只有有界的假延迟和假资源占用，用来喂遥测管道。
package simulate

import (
	"context"
	"math/rand/v2"
	"time"
)

// Work 模拟一段处理耗时并返回实际睡眠时长。
// 睡眠可被 ctx 取消打断，保证关闭时请求不会悬挂。
func Work(ctx context.Context, min, max time.Duration) time.Duration {
	d := Between(min, max)

	timer := time.NewTimer(d)
	defer timer.Stop()

	start := time.Now()
	select {
	case <-timer.C:
		return d
	case <-ctx.Done():
		return time.Since(start)
	}
}

// Between 返回 [min, max) 内的随机时长。
func Between(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + rand.N(max-min)
}

// ShouldFail 以 rate 概率返回 true，rate 取值 [0, 1]。
func ShouldFail(rate float64) bool {
	return rand.Float64() < rate
}

// ActiveUserDelta 模拟用户上线/下线，返回 -1、0 或 1。
func ActiveUserDelta() int64 {
	return rand.Int64N(3) - 1
}

// ActiveUsers 模拟当前在线用户数。
func ActiveUsers() int {
	return 50 + rand.IntN(151)
}

// MemoryUsage 模拟内存占用（字节）。
func MemoryUsage() int64 {
	return 1_000_000 + rand.Int64N(1_000_001)
}

// CPUUsage 模拟 CPU 占用百分比。
func CPUUsage() float64 {
	return 10 + rand.Float64()*80
}
