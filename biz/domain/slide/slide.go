package slide

import (
	"regexp"
	"strings"
)

// Slide 课件中的一页, Children 为嵌套的子页
type Slide struct {
	Title    string   `json:"title"`
	HTML     string   `json:"html"`
	Children []*Slide `json:"children,omitempty"`
	Step     int      `json:"step"`
}

// Structure 页面中出现的内容类型, 用于提示出题时的侧重点
type Structure struct {
	HasTable      bool `json:"has_table"`
	HasCode       bool `json:"has_code"`
	HasImage      bool `json:"has_image"`
	HasNestedList bool `json:"has_nested_list"`
	HasHeading    bool `json:"has_heading"`
}

var codePattern = regexp.MustCompile(`(?i)class |function |public |import |<html|\{.*\}|;|</?(pre|code)>`)

// Classify 根据原始 html 判断页面结构
func Classify(raw string) Structure {
	return Structure{
		HasTable:      strings.Contains(raw, "<table"),
		HasCode:       codePattern.MatchString(raw),
		HasImage:      strings.Contains(raw, "<img"),
		HasNestedList: strings.Count(raw, "<ul") >= 2 && strings.Contains(raw, "<ul><li><ul"),
		HasHeading: strings.Contains(raw, "<h1>") ||
			strings.Contains(raw, "<h2>") ||
			strings.Contains(raw, "<h3>"),
	}
}

// Notes 结构特征对应的出题说明
func (s Structure) Notes() []string {
	var notes []string
	if s.HasTable {
		notes = append(notes, "Tài liệu có bảng dữ liệu.")
	}
	if s.HasCode {
		notes = append(notes, "Tài liệu có đoạn mã tĩnh.")
	}
	if s.HasImage {
		notes = append(notes, "Tài liệu có hình ảnh.")
	}
	if s.HasNestedList {
		notes = append(notes, "Tài liệu có danh sách lồng nhau.")
	}
	return notes
}

// Collect 先序遍历页面及其子页, 返回一一对应的步骤号和 html
func Collect(s *Slide) (steps []int, htmls []string) {
	if s == nil {
		return nil, nil
	}
	steps = append(steps, s.Step)
	htmls = append(htmls, s.HTML)
	for _, child := range s.Children {
		cs, ch := Collect(child)
		steps = append(steps, cs...)
		htmls = append(htmls, ch...)
	}
	return steps, htmls
}
