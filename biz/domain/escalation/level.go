package escalation

import "strings"

// Level 回答的揭示程度, 由低到高: Hint < Steps < Worked Solution < Answer
type Level string

const (
	Hint           Level = "Hint"
	Steps          Level = "Steps"
	WorkedSolution Level = "Worked Solution"
	Answer         Level = "Answer"

	// MoreHint 只作为请求参数出现, 计数和升级时等同于 Hint, 不会被存储
	MoreHint Level = "More Hint"
)

// HintCap 同一步骤累计提示次数达到该值后, 再请求提示会被提升为 Steps
const HintCap = 2

// 回答后展示给学生的按钮
const (
	ButtonMoreHint       = "More Hint"
	ButtonShowSteps      = "Show Steps"
	ButtonWorkedSolution = "Worked Solution"
	ButtonAnswer         = "Just the Answer"
)

// ladder 按钮的规范顺序
var ladder = []string{ButtonMoreHint, ButtonShowSteps, ButtonWorkedSolution, ButtonAnswer}

var aliases = map[string]Level{
	"hint":            Hint,
	"more hint":       Hint,
	"steps":           Steps,
	"show steps":      Steps,
	"worked solution": WorkedSolution,
	"answer":          Answer,
	"just the answer": Answer,
}

// ParseLevel 解析请求的回答等级, 按钮文案也可以直接作为输入
// 无法识别的输入一律视为 Hint
func ParseLevel(s string) Level {
	key := strings.ToLower(strings.Join(strings.Fields(s), " "))
	if l, ok := aliases[key]; ok {
		return l
	}
	return Hint
}

// Rank 等级的揭示程度
func (l Level) Rank() int {
	switch ParseLevel(string(l)) {
	case Steps:
		return 1
	case WorkedSolution:
		return 2
	case Answer:
		return 3
	default:
		return 0
	}
}

func (l Level) String() string {
	return string(l)
}
