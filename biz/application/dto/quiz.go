package dto

// QuizOutput 模型返回的某个主题的题目
type QuizOutput struct {
	Topic   string `json:"topic"`
	Quizzes struct {
		MultipleChoice []*MultipleChoiceOutput `json:"multiple_choice"`
		ShortAnswer    []*ShortAnswerOutput    `json:"short_answer"`
	} `json:"quizzes"`
}

type MultipleChoiceOutput struct {
	Question    string            `json:"question"`
	Choices     map[string]string `json:"choices"`
	Correct     string            `json:"correct"`
	Explanation string            `json:"explanation"`
	SourcePage  StepRef           `json:"source_page"`
	SourceText  string            `json:"source_text"`
}

type ShortAnswerOutput struct {
	Question    string  `json:"question"`
	IdealAnswer string  `json:"ideal_answer"`
	SourcePage  StepRef `json:"source_page"`
	SourceText  string  `json:"source_text"`
}
