package service

import (
	"context"
	"testing"
	"time"

	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/mongo"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/redis"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificationRepo struct {
	mongo.NotificationRepo

	unread      int64
	unreadCalls int
	allRead     bool
}

func (f *fakeNotificationRepo) GetUnreadCount(_ context.Context) (int64, error) {
	f.unreadCalls++
	return f.unread, nil
}

func (f *fakeNotificationRepo) MarkAllAsRead(_ context.Context) error {
	f.allRead = true
	return nil
}

// 换成一个必然连不上的客户端，缓存读写全部失败
func withBrokenRedis(t *testing.T) {
	t.Helper()
	old := redis.Rdb
	client := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	redis.Rdb = client
	t.Cleanup(func() {
		_ = client.Close()
		redis.Rdb = old
	})
}

// 缓存不可用时未读数照样从库里取，缓存只是加速不是依赖
func TestGetUnreadCountCacheUnavailable(t *testing.T) {
	withBrokenRedis(t)

	repo := &fakeNotificationRepo{unread: 5}
	svc := NewNotificationService(repo)

	res, err := svc.GetUnreadCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), res.UnreadCount)
	assert.Equal(t, 1, repo.unreadCalls)
}

func TestMarkAllAsReadCacheUnavailable(t *testing.T) {
	withBrokenRedis(t)

	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo)

	// 缓存清除失败只记日志，不影响已读状态落库
	require.NoError(t, svc.MarkAllAsRead(context.Background()))
	assert.True(t, repo.allRead)
}
