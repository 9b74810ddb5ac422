package redis

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// commandCounter 统计客户端实际发出的命令数
type commandCounter struct {
	calls int32
}

func (h *commandCounter) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (h *commandCounter) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		atomic.AddInt32(&h.calls, 1)
		return next(ctx, cmd)
	}
}

func (h *commandCounter) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

// 抢锁不带重试时也必须真正发出一次 SetNX，定时任务靠它拿锁
func TestTryLockZeroRetriesStillAttempts(t *testing.T) {
	counter := &commandCounter{}
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	client.AddHook(counter)

	old := Rdb
	Rdb = client
	defer func() {
		_ = client.Close()
		Rdb = old
	}()

	locked, err := TryLock(context.Background(), "lock:test", "v", time.Second, 0)

	require.Error(t, err)
	require.False(t, locked)
	require.Equal(t, int32(1), atomic.LoadInt32(&counter.calls))
}
