package config

import "testing"

func TestProviderDerivedSettings(t *testing.T) {
	c := new(Config)
	c.Gemini.ApiKey = "gm-key"
	c.Gemini.Model = "gemini-2.5-flash"
	c.BaiLian.QuizModel = "qwen-plus"

	cases := []struct {
		name      string
		provider  string
		active    string
		quizModel string
		keyed     bool
	}{
		{"bailian", "bailian", "", "qwen-plus", false},
		{"gemini", "gemini", "", "gemini-2.5-flash", true},
		{"gemini serving", "gemini", "gemini", "gemini-2.5-flash", true},
		// gemini 初始化失败后由百炼提供服务
		{"gemini fell back", "gemini", "bailian", "qwen-plus", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c.Model.Provider, c.Model.Active = tc.provider, tc.active
			if got := c.QuizModel(); got != tc.quizModel {
				t.Errorf("QuizModel() = %q, want %q", got, tc.quizModel)
			}
			if got := c.ApiKeyConfigured(); got != tc.keyed {
				t.Errorf("ApiKeyConfigured() = %v, want %v", got, tc.keyed)
			}
		})
	}
}
