package conversation

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Conversation 一个(房间, 用户)对应一个未删除的对话文档
type Conversation struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ConversationID string             `bson:"conversation_id" json:"conversation_id"`
	RoomID         string             `bson:"room_id" json:"room_id"`
	DocID          string             `bson:"doc_id" json:"doc_id"`
	UserID         string             `bson:"user_id" json:"user_id"`
	UserEmail      string             `bson:"user_email" json:"user_email"`
	LabName        string             `bson:"lab_name" json:"lab_name"`
	Steps          []*StepEntry       `bson:"qna_list" json:"qna_list"`
	StartedAt      time.Time          `bson:"started_at" json:"started_at"`
	LastUpdated    time.Time          `bson:"last_updated" json:"last_updated"`
	Deleted        bool               `bson:"deleted" json:"deleted"`
	DeletedAt      *time.Time         `bson:"deleted_at,omitempty" json:"deleted_at,omitempty"`
	// Version 每次更新自增, 用于乐观并发控制
	Version int64 `bson:"version" json:"version"`
}

// StepEntry 某一步骤在对话中的槽位
// Interaction 为当前生效的回答, History 按时间顺序(旧的在前)保存被升级替换掉的回答
type StepEntry struct {
	Step          int            `bson:"step" json:"step"`
	StepName      string         `bson:"step_name" json:"step_name"`
	Message       string         `bson:"message" json:"message"`
	Interaction   *Interaction   `bson:"interaction" json:"interaction"`
	History       []*Interaction `bson:"escalation_history" json:"escalation_history"`
	RelevantInfo  string         `bson:"relevant_info" json:"relevant_info"`
	RelevantSteps []int          `bson:"relevant_steps" json:"relevant_steps"`
	Deleted       bool           `bson:"deleted" json:"deleted"`
}

// Interaction 一次已返回给学生的回答, 归档后不再修改
type Interaction struct {
	CreatedAt        time.Time    `bson:"created_at" json:"created_at"`
	ResponseLevel    string       `bson:"response_level" json:"response_level"`
	UsedStepContent  bool         `bson:"used_step_content" json:"used_step_content"`
	CodeContext      *CodeContext `bson:"code_context,omitempty" json:"code_context,omitempty"`
	Answer           string       `bson:"answer" json:"answer"`
	ButtonsDisplayed []string     `bson:"buttons_displayed" json:"buttons_displayed"`
	OptionsRemoved   []string     `bson:"options_removed" json:"options_removed"`
	Deleted          bool         `bson:"deleted" json:"deleted"`
}

type CodeContext struct {
	Language string `bson:"language,omitempty" json:"language,omitempty"`
	Snippet  string `bson:"snippet,omitempty" json:"snippet,omitempty"`
	Lines    []int  `bson:"lines,omitempty" json:"lines,omitempty"`
}

// IsEmpty 未记录任何回答
func (i *Interaction) IsEmpty() bool {
	return i == nil || (i.ResponseLevel == "" && i.Answer == "")
}

// Live 未被软删除的回答
func (i *Interaction) Live() bool {
	return !i.IsEmpty() && !i.Deleted
}

// ActiveStep 返回指定步骤未删除的槽位下标, 不存在时返回 -1
func (c *Conversation) ActiveStep(step int) int {
	if c == nil {
		return -1
	}
	for i, s := range c.Steps {
		if s != nil && !s.Deleted && s.Step == step {
			return i
		}
	}
	return -1
}
