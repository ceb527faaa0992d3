package slide

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// parse 将 html 片段解析为节点树
func parse(raw string) (*html.Node, error) {
	return html.Parse(strings.NewReader(raw))
}

// textOf 拼接子树中所有去掉首尾空白的文本, 不加分隔符
func textOf(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(strings.TrimSpace(n.Data))
			return
		}
		if n.Type == html.ElementNode && (n.DataAtom == atom.Script || n.DataAtom == atom.Style) {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// findAll 按文档顺序返回所有指定标签的节点
func findAll(root *html.Node, a atom.Atom) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == a {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

// Text 返回 html 片段中的纯文本, 解析失败时返回空串
func Text(raw string) string {
	if raw == "" {
		return ""
	}
	doc, err := parse(raw)
	if err != nil {
		return ""
	}
	return textOf(doc)
}
