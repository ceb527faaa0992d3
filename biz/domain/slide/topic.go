package slide

import (
	"sort"

	"golang.org/x/net/html/atom"
)

// Point 带步骤号的一段原文
type Point struct {
	Step int    `json:"step"`
	Text string `json:"text"`
}

// Topic 由一页课件(含子页)抽取出的知识点
type Topic struct {
	Title       string   `json:"title"`
	KeyPoints   []string `json:"key_points"`
	Explanation string   `json:"explanation"`
	SourcePages []int    `json:"source_pages"`
	// Points 段落原文, 出题后用于回填题目的来源步骤
	Points []Point `json:"source_texts"`
}

// ExtractTopic 列表项作为要点, 段落作为原文, 第一段作为讲解
func ExtractTopic(s *Slide) (*Topic, error) {
	steps, htmls := Collect(s)
	var keys, paras []Point
	for i, raw := range htmls {
		doc, err := parse(raw)
		if err != nil {
			return nil, err
		}
		for _, li := range findAll(doc, atom.Li) {
			keys = append(keys, Point{Step: steps[i], Text: textOf(li)})
		}
		for _, p := range findAll(doc, atom.P) {
			paras = append(paras, Point{Step: steps[i], Text: textOf(p)})
		}
	}

	topic := &Topic{
		Title:       s.Title,
		KeyPoints:   []string{},
		SourcePages: []int{},
		Points:      paras,
	}
	if topic.Points == nil {
		topic.Points = []Point{}
	}
	for _, k := range keys {
		if k.Text != "" {
			topic.KeyPoints = append(topic.KeyPoints, k.Text)
		}
	}
	if len(paras) > 0 {
		topic.Explanation = paras[0].Text
	}

	seen := map[int]struct{}{}
	for _, p := range append(keys, paras...) {
		if _, ok := seen[p.Step]; ok {
			continue
		}
		seen[p.Step] = struct{}{}
		topic.SourcePages = append(topic.SourcePages, p.Step)
	}
	sort.Ints(topic.SourcePages)
	return topic, nil
}
