package conversation

import (
	"time"

	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/consts"
	"github.com/xh-polaris/gopkg/util/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/net/context"
)

// ensureIndexes 创建对话集合的索引
// (room_id, user_id) 在未删除的文档中唯一, 并发创建对话时只有一个能成功
func ensureIndexes(url, db string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cli, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		log.Error("connect mongo for indexes err: %v", err)
		return
	}
	defer func() { _ = cli.Disconnect(ctx) }()

	_, err = cli.Database(db).Collection(CollectionName).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: consts.RoomID, Value: 1}, {Key: consts.UserID, Value: 1}},
			Options: options.Index().
				SetName("uniq_active_room_user").
				SetUnique(true).
				SetPartialFilterExpression(bson.M{consts.Deleted: false}),
		},
		{
			Keys:    bson.D{{Key: consts.ConversationID, Value: 1}},
			Options: options.Index().SetName("uniq_conversation_id").SetUnique(true),
		},
	})
	if err != nil {
		log.Error("create conversation indexes err: %v", err)
	}
}
