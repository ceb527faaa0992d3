package config

import (
	"os"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

var config *Config

type Config struct {
	service.ServiceConf
	ListenOn string
	State    string
	Auth     Auth `json:",optional"`
	Mongo    struct {
		URL string
		DB  string
	}
	Cache    cache.CacheConf
	Redis    *redis.RedisConf `json:",optional"`
	RabbitMQ RabbitMQ         `json:",optional"`
	Cors     Cors             `json:",optional"`
	Model    Model
	BaiLian  BaiLian `json:",optional"`
	Gemini   Gemini  `json:",optional"`
	Tutor    Tutor   `json:",optional"`
}

// Auth 为空时不做鉴权
type Auth struct {
	SecretKey    string `json:",optional"`
	AccessExpire int64  `json:",optional"`
}

type RabbitMQ struct {
	Url      string `json:",optional"`
	Exchange string `json:",default=tutor_interaction"`
	Queue    string `json:",default=tutor_interaction_stats"`
	Key      string `json:",default=interaction.recorded"`
}

type Cors struct {
	Origins []string `json:",optional"`
}

// Model 选择使用的大模型供应商
type Model struct {
	Provider string `json:",default=bailian,options=bailian|gemini"`
	Language string `json:",default=Vietnamese"`
	Timeout  int64  `json:",default=60"`
	// Active 实际提供服务的供应商, 启动时由模型初始化结果决定
	Active string `json:",optional"`
}

// BaiLian 阿里云百炼, 使用 OpenAI 兼容接口
type BaiLian struct {
	ApiKey    string `json:",optional"`
	BaseURL   string `json:",default=https://dashscope-intl.aliyuncs.com/compatible-mode/v1"`
	ChatModel string `json:",default=qwen-max"`
	QuizModel string `json:",default=qwen-plus"`
}

type Gemini struct {
	ApiKey string `json:",optional"`
	Model  string `json:",default=gemini-2.5-flash"`
}

// Tutor 提示升级对话相关的参数
type Tutor struct {
	MergeAttempts int `json:",default=3"`
	LockExpire    int `json:",default=10"`
}

func NewConfig() (*Config, error) {
	c := new(Config)
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "etc/config.yaml"
	}
	err := conf.Load(path, c)
	if err != nil {
		return nil, err
	}
	err = c.SetUp()
	if err != nil {
		return nil, err
	}
	config = c
	return c, nil
}

func GetConfig() *Config {
	return config
}

// ActiveProvider 实际使用的供应商, 未初始化时取配置的供应商
func (c *Config) ActiveProvider() string {
	if c.Model.Active != "" {
		return c.Model.Active
	}
	return c.Model.Provider
}

// ApiKeyConfigured 当前供应商是否配置了密钥
func (c *Config) ApiKeyConfigured() bool {
	switch c.ActiveProvider() {
	case "gemini":
		return c.Gemini.ApiKey != ""
	default:
		return c.BaiLian.ApiKey != ""
	}
}

// QuizModel 出题使用的模型, 为空时使用供应商的默认模型
func (c *Config) QuizModel() string {
	switch c.ActiveProvider() {
	case "gemini":
		return c.Gemini.Model
	default:
		return c.BaiLian.QuizModel
	}
}
