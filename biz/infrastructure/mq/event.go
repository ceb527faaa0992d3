package mq

import "time"

// InteractionEvent 一次交互成功合并后发布的事件
type InteractionEvent struct {
	ConversationID string    `json:"conversation_id"`
	RoomID         string    `json:"room_id"`
	UserID         string    `json:"user_id"`
	Step           int       `json:"step"`
	Level          string    `json:"level"`
	Requested      string    `json:"requested"`
	HintCount      int       `json:"hint_count"`
	Escalated      bool      `json:"escalated"`
	CreatedAt      time.Time `json:"created_at"`
}
