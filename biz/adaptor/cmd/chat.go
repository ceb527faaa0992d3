package cmd

import "time"

type (
	// QnAReq 针对某一步骤的一次提问
	QnAReq struct {
		Message          string              `json:"message"`
		ExtractedContent []*ExtractedContent `json:"extractedContent"`
		Step             int                 `json:"step"`
		StepName         string              `json:"step_name"`
		CurrentStepIndex *int                `json:"currentStepIndex,omitempty"`
		TotalSteps       *int                `json:"totalSteps,omitempty"`
		RoomID           string              `json:"room_id"`
		UserID           string              `json:"user_id"`
		UserEmail        string              `json:"user_email"`
		LabName          string              `json:"lab_name"`
		DocID            string              `json:"doc_id"`
		StructuredData   *StructuredData     `json:"structuredData,omitempty"`
		// ResponseLevel 默认 Hint
		ResponseLevel string       `json:"response_level"`
		CodeContext   *CodeContext `json:"code_context,omitempty"`
	}

	// ExtractedContent 当前步骤中提取出的文字和图片
	ExtractedContent struct {
		TextContent string   `json:"text_content"`
		Images      []string `json:"images,omitempty"`
	}

	// StructuredData 整份课件, 用于计算其他步骤的相关信息
	StructuredData struct {
		Content []*SlideContent `json:"content"`
	}

	CodeContext struct {
		Language string `json:"language,omitempty"`
		Snippet  string `json:"snippet,omitempty"`
		Lines    []int  `json:"lines,omitempty"`
	}

	QnAResp struct {
		Success    bool        `json:"success"`
		QnAContent *QnAContent `json:"qna_content,omitempty"`
		Error      string      `json:"error,omitempty"`
		Message    string      `json:"message,omitempty"`
	}

	// QnAContent 一次回答的结果
	QnAContent struct {
		Step             int      `json:"step"`
		StepName         string   `json:"step_name"`
		Answer           string   `json:"answer"`
		RelevantInfo     string   `json:"relevant_info"`
		RelevantSteps    []int    `json:"relevant_steps"`
		RequestedLevel   string   `json:"requested_level"`
		ResponseLevel    string   `json:"response_level"`
		HintCount        int      `json:"hint_count"`
		ButtonsDisplayed []string `json:"buttons_displayed"`
		OptionsRemoved   []string `json:"options_removed"`
		UsedStepContent  bool     `json:"used_step_content"`
		ConversationID   string   `json:"conversation_id"`
	}
)

type (
	GetConversationReq struct {
		RoomID string `path:"room_id"`
		UserID string `path:"user_id"`
	}

	GetConversationByIDReq struct {
		ConversationID string `path:"conversation_id"`
	}

	ConversationResp struct {
		Success      bool          `json:"success"`
		Conversation *Conversation `json:"conversation,omitempty"`
		Error        string        `json:"error,omitempty"`
		Message      string        `json:"message,omitempty"`
	}

	DeleteConversationReq struct {
		RoomID string `path:"room_id"`
		UserID string `path:"user_id"`
	}

	DeleteConversationResp struct {
		Success      bool   `json:"success"`
		DeletedCount int64  `json:"deleted_count"`
		Error        string `json:"error,omitempty"`
		Message      string `json:"message,omitempty"`
	}

	DeleteStepReq struct {
		RoomID string `path:"room_id"`
		UserID string `path:"user_id"`
		Step   int    `path:"step"`
	}

	DeleteStepResp struct {
		Success bool   `json:"success"`
		Deleted bool   `json:"deleted"`
		Error   string `json:"error,omitempty"`
		Message string `json:"message,omitempty"`
	}

	Conversation struct {
		ConversationID string       `json:"conversation_id"`
		RoomID         string       `json:"room_id"`
		DocID          string       `json:"doc_id"`
		UserID         string       `json:"user_id"`
		UserEmail      string       `json:"user_email"`
		LabName        string       `json:"lab_name"`
		Steps          []*StepEntry `json:"qna_list"`
		StartedAt      time.Time    `json:"started_at"`
		LastUpdated    time.Time    `json:"last_updated"`
		Deleted        bool         `json:"deleted"`
	}

	StepEntry struct {
		Step          int            `json:"step"`
		StepName      string         `json:"step_name"`
		Message       string         `json:"message"`
		Interaction   *Interaction   `json:"interaction"`
		History       []*Interaction `json:"escalation_history"`
		RelevantInfo  string         `json:"relevant_info"`
		RelevantSteps []int          `json:"relevant_steps"`
		Deleted       bool           `json:"deleted"`
	}

	Interaction struct {
		CreatedAt        time.Time    `json:"created_at"`
		ResponseLevel    string       `json:"response_level"`
		UsedStepContent  bool         `json:"used_step_content"`
		CodeContext      *CodeContext `json:"code_context,omitempty"`
		Answer           string       `json:"answer"`
		ButtonsDisplayed []string     `json:"buttons_displayed"`
		OptionsRemoved   []string     `json:"options_removed"`
		Deleted          bool         `json:"deleted"`
	}
)

type (
	ListStatsReq struct {
		RoomID string `path:"room_id"`
	}

	ListStatsResp struct {
		Success bool         `json:"success"`
		Stats   []*StepStats `json:"stats"`
		Error   string       `json:"error,omitempty"`
	}

	StepStats struct {
		Step         int              `json:"step"`
		Interactions int64            `json:"interactions"`
		Escalations  int64            `json:"escalations"`
		Levels       map[string]int64 `json:"levels"`
		UpdatedAt    time.Time        `json:"updated_at"`
	}
)
