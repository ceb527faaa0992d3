package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var fencePattern = regexp.MustCompile("(?s)^`{3,4}(?:json)?\\s*(.*?)\\s*`{3,4}$")

// ErrEmptyOutput 模型没有返回内容
var ErrEmptyOutput = errors.New("model returned empty output")

// StripCodeFences 去掉模型有时包裹在 JSON 外的 markdown 代码块
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if m := fencePattern.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return s
}

// Decode 将模型输出解析为 JSON
func Decode(text string, out any) error {
	text = StripCodeFences(text)
	if text == "" {
		return ErrEmptyOutput
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		preview := []rune(text)
		if len(preview) > 200 {
			preview = preview[:200]
		}
		return fmt.Errorf("model did not return valid JSON, raw output: %s...: %w", string(preview), err)
	}
	return nil
}
