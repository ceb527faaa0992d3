package cmd

import "time"

type (
	// SlideContent 课件中的一页, 可以嵌套子页
	SlideContent struct {
		Title    string          `json:"title"`
		HTML     string          `json:"html"`
		Children []*SlideContent `json:"children,omitempty"`
		Step     int             `json:"step"`
	}

	QuizReq struct {
		LabName   string          `json:"labName"`
		RoomID    string          `json:"roomId"`
		DocID     string          `json:"docID"`
		UserID    string          `json:"userID"`
		UserEmail string          `json:"userEmail"`
		Content   []*SlideContent `json:"content"`
	}

	QuizResp struct {
		ID              string       `json:"id,omitempty"`
		PracticeGuideID string       `json:"practice_guide_id,omitempty"`
		LabName         string       `json:"labName,omitempty"`
		RoomID          string       `json:"roomId,omitempty"`
		DocID           string       `json:"docID,omitempty"`
		UserID          string       `json:"userID,omitempty"`
		UserEmail       string       `json:"userEmail,omitempty"`
		Topics          []*TopicQuiz `json:"topics,omitempty"`
		Success         bool         `json:"success"`
		Error           string       `json:"error,omitempty"`
		Message         string       `json:"message,omitempty"`
	}

	TopicQuiz struct {
		Topic   string `json:"topic"`
		Quizzes *Quiz  `json:"quizzes"`
	}

	Quiz struct {
		MultipleChoice []*MultipleChoice `json:"multiple_choice"`
		ShortAnswer    []*ShortAnswer    `json:"short_answer"`
	}

	MultipleChoice struct {
		Question    string            `json:"question"`
		Choices     map[string]string `json:"choices"`
		Correct     string            `json:"correct"`
		Explanation string            `json:"explanation"`
		SourcePage  int               `json:"source_page"`
		SourceText  string            `json:"source_text"`
	}

	ShortAnswer struct {
		Question    string `json:"question"`
		IdealAnswer string `json:"ideal_answer"`
		SourcePage  int    `json:"source_page"`
		SourceText  string `json:"source_text"`
	}
)

type (
	GetTestsReq struct {
		Paging
	}

	TestsResp struct {
		Success bool            `json:"success"`
		Tests   []*PracticeTest `json:"tests"`
		Total   int64           `json:"total"`
		Error   string          `json:"error,omitempty"`
		Message string          `json:"message,omitempty"`
	}

	GetQuestionsReq struct {
		Limit int64 `query:"limit"`
	}

	QuestionsResp struct {
		Success   bool            `json:"success"`
		Questions []*PracticeTest `json:"questions"`
		Total     int             `json:"total"`
	}

	CheckAvailabilityReq struct {
		RoomID string `query:"roomId"`
	}

	AvailabilityResp struct {
		Available bool  `json:"available"`
		Count     int64 `json:"count"`
	}

	PracticeTest struct {
		ID              string            `json:"_id"`
		PracticeTestID  string            `json:"practice_test_id"`
		StudyGuideTitle string            `json:"study_guide_title"`
		SectionTitle    string            `json:"section_title"`
		GuideType       string            `json:"guide_type"`
		Questions       []*MultipleChoice `json:"questions"`
		ShortAnswer     []*ShortAnswer    `json:"short_answer"`
		CreatedAt       time.Time         `json:"created_at"`
		RoomID          string            `json:"room_id,omitempty"`
		DocID           string            `json:"doc_id,omitempty"`
		UserID          string            `json:"user_id,omitempty"`
		UserEmail       string            `json:"user_email,omitempty"`
	}
)
