package practice

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PracticeTest 由一页课件生成的一组练习题
type PracticeTest struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PracticeTestID  string             `bson:"practice_test_id" json:"practice_test_id"`
	StudyGuideTitle string             `bson:"study_guide_title" json:"study_guide_title"`
	SectionTitle    string             `bson:"section_title" json:"section_title"`
	GuideType       string             `bson:"guide_type" json:"guide_type"`
	Questions       []*MultipleChoice  `bson:"questions" json:"questions"`
	ShortAnswer     []*ShortAnswer     `bson:"short_answer" json:"short_answer"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	RoomID          string             `bson:"room_id,omitempty" json:"room_id,omitempty"`
	DocID           string             `bson:"doc_id,omitempty" json:"doc_id,omitempty"`
	UserID          string             `bson:"user_id,omitempty" json:"user_id,omitempty"`
	UserEmail       string             `bson:"user_email,omitempty" json:"user_email,omitempty"`
}

type MultipleChoice struct {
	Question    string            `bson:"question" json:"question"`
	Choices     map[string]string `bson:"choices" json:"choices"`
	Correct     string            `bson:"correct" json:"correct"`
	Explanation string            `bson:"explanation" json:"explanation"`
	SourcePage  int               `bson:"source_page" json:"source_page"`
	SourceText  string            `bson:"source_text" json:"source_text"`
}

type ShortAnswer struct {
	Question    string `bson:"question" json:"question"`
	IdealAnswer string `bson:"ideal_answer" json:"ideal_answer"`
	SourcePage  int    `bson:"source_page" json:"source_page"`
	SourceText  string `bson:"source_text" json:"source_text"`
}
