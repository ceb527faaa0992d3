package bailian

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/quang08/SmartDoc-SSP/biz/domain/model"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/consts"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/util"
)

var _ model.ChatApp = (*BLChatApp)(nil)

// BLChatApp 是阿里云百炼对话模型, 通过 OpenAI 兼容接口调用
// 不保存会话上下文, 每次调用独立
type BLChatApp struct {
	client *util.HttpClient
	url    string
	model  string
	header http.Header
}

// message OpenAI 兼容格式的消息
type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type completionReq struct {
	Model          string          `json:"model"`
	Messages       []message       `json:"messages"`
	EnableThinking bool            `json:"enable_thinking"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type completionResp struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

// NewBLChatApp 创建一个百炼模型应用实例, model 为默认使用的模型
func NewBLChatApp(client *util.HttpClient, baseURL, apiKey, model string) *BLChatApp {
	app := &BLChatApp{
		client: client,
		url:    strings.TrimRight(baseURL, "/") + "/chat/completions",
		model:  model,
		header: http.Header{},
	}
	app.header.Set("Authorization", "Bearer "+apiKey)
	app.header.Set("Content-Type", "application/json")
	return app
}

// Call 非流式调用
func (app *BLChatApp) Call(ctx context.Context, req *model.CallReq) (string, error) {
	body := &completionReq{
		Model:    app.model,
		Messages: make([]message, 0, 2),
	}
	if req.System != "" {
		body.Messages = append(body.Messages, message{Role: "system", Content: req.System})
	}
	body.Messages = append(body.Messages, message{Role: "user", Content: req.Prompt})
	if req.Model != "" {
		body.Model = req.Model
	}
	if req.JSON {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	var resp completionResp
	if err := app.client.Req(ctx, consts.Post, app.url, app.header, body, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("bailian: no choices in response")
	}
	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", model.ErrEmptyOutput
	}
	return out, nil
}

// Close BLChat暂时没有需要释放的资源
func (app *BLChatApp) Close() error {
	return nil
}
