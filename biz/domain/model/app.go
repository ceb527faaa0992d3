package model

import (
	"context"
)

// CallReq 一次非流式调用的参数
type CallReq struct {
	// System 系统提示词
	System string
	// Prompt 用户提示词
	Prompt string
	// Model 为空时使用供应商的默认对话模型
	Model string
	// JSON 要求模型只输出 JSON 对象
	JSON bool
}

// ChatApp 是第三方对话大模型应用的抽象
type ChatApp interface {
	// Call 整体调用, 返回模型输出的文本
	Call(ctx context.Context, req *CallReq) (string, error)

	// Close 关闭资源
	Close() error
}
