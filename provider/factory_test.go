package provider

import (
	"testing"

	"github.com/quang08/SmartDoc-SSP/biz/domain/model/bailian"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/config"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/lock"
)

func TestNewChatAppFallsBackToBaiLian(t *testing.T) {
	c := new(config.Config)
	c.Model.Provider = "gemini"
	c.Model.Timeout = 5
	c.Gemini.Model = "gemini-2.5-flash"
	c.BaiLian.ApiKey = "sk-test"
	c.BaiLian.BaseURL = "http://127.0.0.1:1/v1"
	c.BaiLian.ChatModel = "qwen-max"
	c.BaiLian.QuizModel = "qwen-plus"

	app := NewChatApp(c)
	if _, ok := app.(*bailian.BLChatApp); !ok {
		t.Fatalf("app = %T, want *bailian.BLChatApp", app)
	}
	if got := c.ActiveProvider(); got != "bailian" {
		t.Fatalf("active provider = %q", got)
	}
	if got := c.QuizModel(); got != "qwen-plus" {
		t.Fatalf("quiz model = %q, want the bailian model", got)
	}
	if !c.ApiKeyConfigured() {
		t.Fatalf("bailian key not reported after fallback")
	}
}

func TestNewLockerWithoutRedis(t *testing.T) {
	c := new(config.Config)
	if _, ok := NewLocker(c, nil).(*lock.LocalLocker); !ok {
		t.Fatalf("expected local locker when redis is not configured")
	}
}
