package escalation

// DecideEffectiveLevel 根据请求等级和此前的提示次数决定实际返回的等级
// 同一步骤已经给过 HintCap 次提示后, 再请求提示会被提升为 Steps, 避免学生一直停留在提示
func DecideEffectiveLevel(requested Level, priorHints int) Level {
	requested = ParseLevel(string(requested))
	if requested == Hint && priorHints >= HintCap {
		return Steps
	}
	return requested
}

// NextAffordances 回答之后展示和收回的按钮
// hintsAfter 为包含本次回答在内的提示次数
func NextAffordances(effective Level, hintsAfter int) (displayed, removed []string) {
	switch ParseLevel(string(effective)) {
	case Steps:
		return []string{ButtonWorkedSolution, ButtonAnswer},
			[]string{ButtonMoreHint}
	case WorkedSolution:
		return []string{ButtonAnswer},
			[]string{ButtonMoreHint, ButtonShowSteps}
	case Answer:
		return []string{},
			[]string{ButtonMoreHint, ButtonShowSteps, ButtonWorkedSolution}
	default:
		if hintsAfter >= HintCap {
			return []string{ButtonShowSteps, ButtonWorkedSolution, ButtonAnswer},
				[]string{ButtonMoreHint}
		}
		return []string{ButtonMoreHint, ButtonShowSteps, ButtonWorkedSolution, ButtonAnswer},
			[]string{}
	}
}

// Narrow 保证同一步骤的按钮只减不增
// 展示的按钮与上一次展示的取交集, 收回的按钮与上一次收回的取并集
func Narrow(displayed, removed []string, prev StepState) ([]string, []string) {
	if !prev.Exists || (prev.Buttons == nil && len(prev.Removed) == 0) {
		return displayed, removed
	}
	shown := toSet(prev.Buttons)
	outDisplayed := make([]string, 0, len(displayed))
	for _, b := range displayed {
		if _, ok := shown[b]; ok {
			outDisplayed = append(outDisplayed, b)
		}
	}

	gone := toSet(removed)
	for _, b := range prev.Removed {
		gone[b] = struct{}{}
	}
	outRemoved := make([]string, 0, len(gone))
	for _, b := range ladder {
		if _, ok := gone[b]; ok {
			outRemoved = append(outRemoved, b)
		}
	}
	return outDisplayed, outRemoved
}

func toSet(ss []string) map[string]struct{} {
	m := make(map[string]struct{}, len(ss))
	for _, s := range ss {
		m[s] = struct{}{}
	}
	return m
}
