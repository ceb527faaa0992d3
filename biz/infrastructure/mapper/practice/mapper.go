package practice

import (
	"github.com/quang08/SmartDoc-SSP/biz/adaptor/cmd"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/config"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/consts"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/util"
	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/net/context"
)

const (
	CollectionName = "practice_tests"
)

type IMongoMapper interface {
	InsertMany(ctx context.Context, tests []*PracticeTest) error
	FindMany(ctx context.Context, p *cmd.Paging) (data []*PracticeTest, total int64, err error)
	CountByRoom(ctx context.Context, roomID string) (int64, error)
	DeleteByRoomUser(ctx context.Context, roomID, userID string) (int64, error)
}

var _ IMongoMapper = (*MongoMapper)(nil)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CollectionName, config.Cache)
	return &MongoMapper{conn: conn}
}

func (m *MongoMapper) InsertMany(ctx context.Context, tests []*PracticeTest) error {
	if len(tests) == 0 {
		return nil
	}
	docs := make([]any, 0, len(tests))
	for _, t := range tests {
		if t.ID.IsZero() {
			t.ID = primitive.NewObjectID()
		}
		docs = append(docs, t)
	}
	_, err := m.conn.InsertMany(ctx, docs)
	return err
}

// FindMany 按创建时间倒序分页查询
func (m *MongoMapper) FindMany(ctx context.Context, p *cmd.Paging) (data []*PracticeTest, total int64, err error) {
	skip, limit := util.ParsePaging(p)
	data = make([]*PracticeTest, 0, limit)
	err = m.conn.Find(ctx, &data,
		bson.M{}, &options.FindOptions{
			Skip:  &skip,
			Limit: &limit,
			Sort:  bson.M{consts.CreatedAt: -1},
		})
	if err != nil {
		return nil, 0, err
	}
	total, err = m.conn.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}
	return data, total, nil
}

func (m *MongoMapper) CountByRoom(ctx context.Context, roomID string) (int64, error) {
	return m.conn.CountDocuments(ctx, bson.M{consts.RoomID: roomID})
}

func (m *MongoMapper) DeleteByRoomUser(ctx context.Context, roomID, userID string) (int64, error) {
	return m.conn.DeleteMany(ctx, bson.M{consts.RoomID: roomID, consts.UserID: userID})
}
