package gemini

import (
	"context"
	"errors"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/quang08/SmartDoc-SSP/biz/domain/model"
	"google.golang.org/api/option"
)

var _ model.ChatApp = (*GMChatApp)(nil)

// GMChatApp 是 Google Gemini 对话模型, 客户端在创建时建立并在 Close 时释放
type GMChatApp struct {
	client *genai.Client
	model  string
}

func NewGMChatApp(ctx context.Context, apiKey, model string) (*GMChatApp, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini: api key is empty")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GMChatApp{client: cl, model: strings.TrimSpace(model)}, nil
}

// Call 非流式调用
func (app *GMChatApp) Call(ctx context.Context, req *model.CallReq) (string, error) {
	name := app.model
	if req.Model != "" {
		name = req.Model
	}
	m := app.client.GenerativeModel(name)
	if req.JSON {
		m.GenerationConfig = genai.GenerationConfig{
			Temperature:      ptrFloat32(0.3),
			ResponseMIMEType: "application/json",
		}
	}
	if req.System != "" {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.System)}}
	}

	resp, err := m.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return "", err
	}
	txt := strings.TrimSpace(firstText(resp))
	if txt == "" {
		return "", model.ErrEmptyOutput
	}
	return txt, nil
}

func (app *GMChatApp) Close() error {
	return app.client.Close()
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
