package gemini

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
)

func TestFirstText(t *testing.T) {
	if firstText(nil) != "" {
		t.Fatal("nil response should give empty text")
	}
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: nil},
			{Content: &genai.Content{Parts: []genai.Part{&genai.Blob{MIMEType: "image/png"}, genai.Text(`{"answer":"x"}`)}}},
		},
	}
	if got := firstText(resp); got != `{"answer":"x"}` {
		t.Fatalf("firstText = %q", got)
	}
}

func TestNewGMChatAppRequiresKey(t *testing.T) {
	if _, err := NewGMChatApp(context.Background(), "  ", "gemini-2.5-flash"); err == nil {
		t.Fatal("want error for empty api key")
	}
}
