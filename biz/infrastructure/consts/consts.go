package consts

// 数据库相关
const (
	ID             = "_id"
	ConversationID = "conversation_id"
	RoomID         = "room_id"
	UserID         = "user_id"
	Step           = "step"
	Deleted        = "deleted"
	DeletedAt      = "deleted_at"
	Version        = "version"
	QnAList        = "qna_list"
	LastUpdated    = "last_updated"
	CreatedAt      = "created_at"
	StartedAt      = "started_at"
)

// Post http
const (
	Post = "POST"
)

// 默认值
const (
	EndCmd = -1
	AskCmd = 0
	Ping   = 1

	DefaultLabName  = "Unknown Lab"
	DefaultLanguage = "Vietnamese"
	DefaultLimit    = 100
)

// 练习题与统计
const (
	PracticeTestID = "practice_test_id"
	Levels         = "levels"
	Interactions   = "interactions"
	Escalations    = "escalations"
	UpdatedAt      = "updated_at"
	GuideSlides    = "slides"
)
