package lock

import (
	"context"
	"errors"
	"time"

	"github.com/xh-polaris/gopkg/util/log"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// retryInterval 抢锁失败后的等待间隔
const retryInterval = 50 * time.Millisecond

// ErrLockTimeout 在 ctx 结束前没有拿到锁
var ErrLockTimeout = errors.New("acquire lock timeout")

// RedisLocker 基于 go-zero RedisLock 的分布式互斥, 多实例部署时使用
type RedisLocker struct {
	rds    *redis.Redis
	expire int
}

// NewRedisLocker expire 为锁的过期秒数, 持有者异常退出时锁会自动释放
func NewRedisLocker(rds *redis.Redis, expire int) *RedisLocker {
	if expire <= 0 {
		expire = 10
	}
	return &RedisLocker{rds: rds, expire: expire}
}

// Lock 阻塞直到拿到锁或 ctx 结束
func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	rl := redis.NewRedisLock(l.rds, key)
	rl.SetExpire(l.expire)

	ctx, cancel := context.WithTimeout(ctx, time.Duration(l.expire)*time.Second)
	defer cancel()
	for {
		ok, err := rl.AcquireCtx(ctx)
		if err != nil {
			return nil, err
		}
		if ok {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ErrLockTimeout
		case <-time.After(retryInterval):
		}
	}

	return func() {
		// 释放不受调用方 ctx 取消的影响
		if _, err := rl.ReleaseCtx(context.Background()); err != nil {
			log.Error("[RedisLocker] release %s failed: %v", key, err)
		}
	}, nil
}
