package escalation

import (
	"reflect"
	"testing"

	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/mapper/conversation"
)

func interaction(level string, buttons, removed []string) *conversation.Interaction {
	return &conversation.Interaction{
		ResponseLevel:    level,
		Answer:           "answer for " + level,
		ButtonsDisplayed: buttons,
		OptionsRemoved:   removed,
	}
}

func TestCountPriorHints(t *testing.T) {
	conv := &conversation.Conversation{
		Steps: []*conversation.StepEntry{
			{
				Step:        3,
				Interaction: interaction("Hint", nil, nil),
				History:     []*conversation.Interaction{interaction("Hint", nil, nil)},
			},
			{
				Step:        4,
				Interaction: interaction("Steps", nil, nil),
				History:     []*conversation.Interaction{interaction("Hint", nil, nil), interaction("Hint", nil, nil)},
			},
			{
				Step:        5,
				Deleted:     true,
				Interaction: interaction("Hint", nil, nil),
			},
			{
				Step:        6,
				Interaction: interaction("More Hint", nil, nil),
				History: []*conversation.Interaction{
					{ResponseLevel: "Hint", Answer: "x", Deleted: true},
					{},
				},
			},
		},
	}

	cases := map[int]int{3: 2, 4: 2, 5: 0, 6: 1, 7: 0}
	for step, want := range cases {
		if got := CountPriorHints(conv, step); got != want {
			t.Errorf("CountPriorHints(step %d) = %d, want %d", step, got, want)
		}
	}
	if got := CountPriorHints(nil, 3); got != 0 {
		t.Errorf("CountPriorHints(nil) = %d, want 0", got)
	}
}

func TestInspectLatestAffordances(t *testing.T) {
	conv := &conversation.Conversation{
		Steps: []*conversation.StepEntry{{
			Step: 2,
			History: []*conversation.Interaction{
				interaction("Hint", []string{ButtonMoreHint}, []string{}),
			},
			Interaction: interaction("Steps", []string{ButtonAnswer}, []string{ButtonMoreHint}),
		}},
	}
	st := Inspect(conv, 2)
	if !st.Exists || st.HintCount != 1 {
		t.Fatalf("unexpected state %+v", st)
	}
	if !reflect.DeepEqual(st.Buttons, []string{ButtonAnswer}) || !reflect.DeepEqual(st.Removed, []string{ButtonMoreHint}) {
		t.Fatalf("affordances not taken from the active interaction: %+v", st)
	}

	// 生效回答被删除时取最近的归档回答
	conv.Steps[0].Interaction.Deleted = true
	st = Inspect(conv, 2)
	if !reflect.DeepEqual(st.Buttons, []string{ButtonMoreHint}) {
		t.Fatalf("buttons = %v", st.Buttons)
	}
}
