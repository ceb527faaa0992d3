package prompt

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"strconv"
	"strings"
	"text/template"
)

//go:embed templates/system.txt
var systemPrompt string

//go:embed templates/qna.tmpl
var qnaTemplate string

//go:embed templates/quiz.tmpl
var quizTemplate string

var funcs = template.FuncMap{
	"upper": strings.ToUpper,
	"json": func(v any) (string, error) {
		b, err := json.MarshalIndent(v, "", "  ")
		return string(b), err
	},
	"join": func(lines []int) string {
		ss := make([]string, len(lines))
		for i, l := range lines {
			ss[i] = strconv.Itoa(l)
		}
		return strings.Join(ss, ", ")
	},
}

var (
	qnaTmpl  = template.Must(template.New("qna").Funcs(funcs).Parse(qnaTemplate))
	quizTmpl = template.Must(template.New("quiz").Funcs(funcs).Parse(quizTemplate))
)

// System 两类调用共用的系统提示词
func System() string {
	return strings.TrimSpace(systemPrompt)
}

// Code 学生随问题附带的代码
type Code struct {
	Language string
	Snippet  string
	Lines    []int
}

// QnAData 问答提示词的参数
type QnAData struct {
	Language     string
	Level        string
	Step         int
	StepName     string
	Message      string
	HasImages    bool
	StepContent  string
	RelevantInfo string
	Code         *Code
}

// QuizData 出题提示词的参数
type QuizData struct {
	Language    string
	Title       string
	Notes       []string
	KeyPoints   []string
	Explanation string
	Points      any
}

// QnA 渲染问答提示词, 回答的详细程度由 Level 决定
func QnA(d *QnAData) (string, error) {
	return render(qnaTmpl, d)
}

// Quiz 渲染出题提示词
func Quiz(d *QuizData) (string, error) {
	return render(quizTmpl, d)
}

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}
