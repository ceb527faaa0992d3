package redis

import (
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/config"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// NewRedis 未配置 Redis 时返回 nil, 调用方退化为进程内实现
func NewRedis(c *config.Config) *redis.Redis {
	if c.Redis == nil || c.Redis.Host == "" {
		return nil
	}
	return redis.MustNewRedis(*c.Redis)
}
