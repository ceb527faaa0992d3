package slide

import "strings"

// minScore 低于该分数的候选不被采用
const minScore = 0.5

func tokens(s string) map[string]struct{} {
	fields := strings.Fields(strings.ToLower(s))
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

// FindStep 找到与片段最相关的步骤号
// 得分为 片段与候选的公共词数 / 候选的词数, 只采用严格最高且超过 0.5 的候选
// 都不满足时返回第一个候选的步骤, 没有候选时返回 1
func FindStep(fragment string, candidates []Point) int {
	if len(candidates) == 0 {
		return 1
	}
	target := tokens(fragment)
	best, bestScore := candidates[0].Step, 0.0
	for _, c := range candidates {
		src := tokens(c.Text)
		if len(src) == 0 {
			continue
		}
		common := 0
		for t := range src {
			if _, ok := target[t]; ok {
				common++
			}
		}
		score := float64(common) / float64(len(src))
		if score > bestScore && score > minScore {
			best, bestScore = c.Step, score
		}
	}
	return best
}
