package escalation

import (
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/mapper/conversation"
)

// StepState 某一步骤在当前请求之前的状态
type StepState struct {
	// Exists 该步骤存在未删除的回答
	Exists bool
	// HintCount 生效回答与归档回答中 Hint 等级的数量
	HintCount int
	// Buttons 最近一次回答展示的按钮
	Buttons []string
	// Removed 最近一次回答收回的按钮
	Removed []string
}

// Inspect 读取对话中某一步骤的状态, 软删除的槽位和回答不参与计算
func Inspect(conv *conversation.Conversation, step int) StepState {
	var st StepState
	idx := conv.ActiveStep(step)
	if idx < 0 {
		return st
	}
	entry := conv.Steps[idx]

	var latest *conversation.Interaction
	for _, it := range entry.History {
		if it == nil || !it.Live() {
			continue
		}
		if ParseLevel(it.ResponseLevel) == Hint {
			st.HintCount++
		}
		latest = it
	}
	if it := entry.Interaction; it.Live() {
		if ParseLevel(it.ResponseLevel) == Hint {
			st.HintCount++
		}
		latest = it
	}

	if latest != nil {
		st.Exists = true
		st.Buttons = latest.ButtonsDisplayed
		st.Removed = latest.OptionsRemoved
	}
	return st
}

// CountPriorHints 统计某一步骤此前返回过的提示次数
func CountPriorHints(conv *conversation.Conversation, step int) int {
	return Inspect(conv, step).HintCount
}
