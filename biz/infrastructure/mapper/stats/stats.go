package stats

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StepStats 某个房间某一步骤的交互统计
type StepStats struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	RoomID       string             `bson:"room_id" json:"room_id"`
	Step         int                `bson:"step" json:"step"`
	Interactions int64              `bson:"interactions" json:"interactions"`
	// Escalations 命中已有槽位的次数
	Escalations int64 `bson:"escalations" json:"escalations"`
	// Levels 各回答等级的次数
	Levels    map[string]int64 `bson:"levels" json:"levels"`
	UpdatedAt time.Time        `bson:"updated_at" json:"updated_at"`
}
