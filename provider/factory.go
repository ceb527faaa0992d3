package provider

import (
	"context"
	"time"

	"github.com/quang08/SmartDoc-SSP/biz/domain/escalation"
	"github.com/quang08/SmartDoc-SSP/biz/domain/model"
	"github.com/quang08/SmartDoc-SSP/biz/domain/model/bailian"
	"github.com/quang08/SmartDoc-SSP/biz/domain/model/gemini"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/config"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/lock"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/util"
	"github.com/xh-polaris/gopkg/util/log"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// NewChatApp 按配置选择大模型供应商, gemini 初始化失败时退回百炼
func NewChatApp(c *config.Config) model.ChatApp {
	if c.Model.Provider == "gemini" {
		app, err := gemini.NewGMChatApp(context.Background(), c.Gemini.ApiKey, c.Gemini.Model)
		if err == nil {
			c.Model.Active = "gemini"
			return app
		}
		log.Error("init gemini chat app failed, fallback to bailian: %v", err)
	}
	c.Model.Active = "bailian"
	timeout := time.Duration(c.Model.Timeout) * time.Second
	return bailian.NewBLChatApp(util.NewHttpClient(timeout), c.BaiLian.BaseURL, c.BaiLian.ApiKey, c.BaiLian.ChatModel)
}

// NewLocker 配置了 redis 时使用分布式锁, 否则退化为进程内锁
func NewLocker(c *config.Config, rds *redis.Redis) escalation.Locker {
	if rds == nil {
		log.Info("redis not configured, using local step lock")
		return lock.NewLocalLocker()
	}
	return lock.NewRedisLocker(rds, c.Tutor.LockExpire)
}
