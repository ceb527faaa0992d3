package model

import (
	"errors"
	"testing"
)

func TestStripCodeFences(t *testing.T) {
	cases := map[string]string{
		"```json\n{\"a\":1}\n```": `{"a":1}`,
		"```\n{\"a\":1}```":       `{"a":1}`,
		"````json {\"a\":1} ````": `{"a":1}`,
		"  {\"a\":1}  ":           `{"a":1}`,
	}
	for in, want := range cases {
		if got := StripCodeFences(in); got != want {
			t.Errorf("StripCodeFences(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDecode(t *testing.T) {
	var out struct {
		Answer string `json:"answer"`
	}
	if err := Decode("```json\n{\"answer\": \"Dựa trên slide 3: ...\"}\n```", &out); err != nil {
		t.Fatal(err)
	}
	if out.Answer != "Dựa trên slide 3: ..." {
		t.Fatalf("answer = %q", out.Answer)
	}
	if err := Decode("   ", &out); !errors.Is(err, ErrEmptyOutput) {
		t.Fatalf("want ErrEmptyOutput, got %v", err)
	}
	if err := Decode("not json", &out); err == nil {
		t.Fatal("want error for invalid JSON")
	}
}
