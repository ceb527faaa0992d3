package bailian

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/quang08/SmartDoc-SSP/biz/domain/model"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/util"
)

func TestBLChatApp_Call(t *testing.T) {
	var got completionReq
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer sk-test" {
			t.Errorf("authorization = %q", r.Header.Get("Authorization"))
		}
		got = completionReq{}
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":" {\"answer\":\"ok\"} "},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	app := NewBLChatApp(util.NewHttpClient(time.Second), srv.URL+"/v1/", "sk-test", "qwen-max")
	out, err := app.Call(context.Background(), &model.CallReq{System: "sys", Prompt: "hi", JSON: true})
	if err != nil {
		t.Fatal(err)
	}
	if out != `{"answer":"ok"}` {
		t.Fatalf("out = %q", out)
	}
	if got.Model != "qwen-max" || len(got.Messages) != 2 || got.Messages[1].Content != "hi" {
		t.Fatalf("unexpected request %+v", got)
	}
	if got.ResponseFormat == nil || got.ResponseFormat.Type != "json_object" {
		t.Fatalf("json response format not requested")
	}

	if _, err = app.Call(context.Background(), &model.CallReq{Prompt: "hi", Model: "qwen-plus"}); err != nil {
		t.Fatal(err)
	}
	if got.Model != "qwen-plus" || got.ResponseFormat != nil {
		t.Fatalf("model override not applied: %+v", got)
	}
	// 没有系统提示词时只发送用户消息
	if len(got.Messages) != 1 || got.Messages[0].Role != "user" {
		t.Fatalf("empty system prompt sent: %+v", got.Messages)
	}
}

func TestBLChatApp_CallErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("case") {
		case "empty":
			_, _ = w.Write([]byte(`{"choices":[{"message":{"content":""}}]}`))
		default:
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"quota"}`))
		}
	}))
	defer srv.Close()

	app := NewBLChatApp(util.NewHttpClient(time.Second), srv.URL, "sk", "qwen-max")
	app.url = srv.URL + "?case=quota"
	_, err := app.Call(context.Background(), &model.CallReq{Prompt: "hi"})
	var se *util.StatusError
	if !errors.As(err, &se) || se.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("want status error, got %v", err)
	}

	app.url = srv.URL + "?case=empty"
	if _, err = app.Call(context.Background(), &model.CallReq{Prompt: "hi"}); !errors.Is(err, model.ErrEmptyOutput) {
		t.Fatalf("want ErrEmptyOutput, got %v", err)
	}
}
