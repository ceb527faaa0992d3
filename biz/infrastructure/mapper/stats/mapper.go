package stats

import (
	"time"

	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/config"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/consts"
	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/net/context"
)

const (
	CollectionName = "interaction_stats"
)

type IMongoMapper interface {
	Incr(ctx context.Context, roomID string, step int, level string, escalated bool) error
	FindByRoom(ctx context.Context, roomID string) ([]*StepStats, error)
}

var _ IMongoMapper = (*MongoMapper)(nil)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CollectionName, config.Cache)
	return &MongoMapper{conn: conn}
}

// Incr 累加一次交互, 文档不存在时创建
func (m *MongoMapper) Incr(ctx context.Context, roomID string, step int, level string, escalated bool) error {
	inc := bson.M{
		consts.Interactions:         1,
		consts.Levels + "." + level: 1,
	}
	if escalated {
		inc[consts.Escalations] = 1
	}
	_, err := m.conn.UpdateOneNoCache(ctx,
		bson.M{consts.RoomID: roomID, consts.Step: step},
		bson.M{"$inc": inc, "$set": bson.M{consts.UpdatedAt: time.Now()}},
		options.Update().SetUpsert(true))
	return err
}

func (m *MongoMapper) FindByRoom(ctx context.Context, roomID string) ([]*StepStats, error) {
	data := make([]*StepStats, 0)
	err := m.conn.Find(ctx, &data, bson.M{consts.RoomID: roomID}, options.Find().SetSort(bson.M{consts.Step: 1}))
	if err != nil {
		return nil, err
	}
	return data, nil
}
