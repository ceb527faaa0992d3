package conversation

import (
	"errors"
	"strconv"
	"time"

	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/config"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/consts"
	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/net/context"
)

const (
	prefixConversationCacheKey = "cache:conversation:"
	CollectionName             = "chat"
)

type IMongoMapper interface {
	FindActive(ctx context.Context, roomID, userID string) (*Conversation, error)
	FindByConversationID(ctx context.Context, conversationID string) (*Conversation, error)
	Create(ctx context.Context, conv *Conversation) error
	AppendStep(ctx context.Context, conv *Conversation, entry *StepEntry) error
	EscalateStep(ctx context.Context, conv *Conversation, index int, entry *StepEntry) error
	SoftDelete(ctx context.Context, roomID, userID string) (int64, error)
	SoftDeleteStep(ctx context.Context, roomID, userID string, step int) (bool, error)
}

var _ IMongoMapper = (*MongoMapper)(nil)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CollectionName, config.Cache)
	ensureIndexes(config.Mongo.URL, config.Mongo.DB)
	return &MongoMapper{conn: conn}
}

func cacheKey(conversationID string) string {
	return prefixConversationCacheKey + conversationID
}

// activeFilter 兼容没有 deleted 字段的历史文档
func activeFilter(roomID, userID string) bson.M {
	return bson.M{
		consts.RoomID:  roomID,
		consts.UserID:  userID,
		consts.Deleted: bson.M{"$ne": true},
	}
}

// FindActive 查询(房间, 用户)下未删除的对话, 直接读库以保证版本号最新
func (m *MongoMapper) FindActive(ctx context.Context, roomID, userID string) (*Conversation, error) {
	var conv Conversation
	err := m.conn.FindOneNoCache(ctx, &conv, activeFilter(roomID, userID))
	switch {
	case err == nil:
		return &conv, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindByConversationID(ctx context.Context, conversationID string) (*Conversation, error) {
	var conv Conversation
	err := m.conn.FindOne(ctx, cacheKey(conversationID), &conv, bson.M{consts.ConversationID: conversationID})
	switch {
	case err == nil:
		return &conv, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

// Create 新建对话, 同一(房间, 用户)并发创建时由唯一索引兜底, 返回 ErrConflict
func (m *MongoMapper) Create(ctx context.Context, conv *Conversation) error {
	_, err := m.conn.InsertOneNoCache(ctx, conv)
	return createErr(err)
}

// createErr 唯一索引冲突说明对话已被并发创建
func createErr(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return consts.ErrConflict
	}
	return err
}

// AppendStep 追加一个新的步骤槽位
func (m *MongoMapper) AppendStep(ctx context.Context, conv *Conversation, entry *StepEntry) error {
	return m.casUpdate(ctx, conv, appendUpdate(entry, time.Now()))
}

func appendUpdate(entry *StepEntry, now time.Time) bson.M {
	return bson.M{
		"$push": bson.M{consts.QnAList: entry},
		"$set":  bson.M{consts.LastUpdated: now},
		"$inc":  bson.M{consts.Version: 1},
	}
}

// EscalateStep 用升级后的槽位整体替换 index 处的槽位
// 归档与覆盖在同一次单文档更新中完成, 不会出现只归档未覆盖的中间状态
func (m *MongoMapper) EscalateStep(ctx context.Context, conv *Conversation, index int, entry *StepEntry) error {
	return m.casUpdate(ctx, conv, escalateUpdate(index, entry, time.Now()))
}

func escalateUpdate(index int, entry *StepEntry, now time.Time) bson.M {
	return bson.M{
		"$set": bson.M{
			consts.QnAList + "." + strconv.Itoa(index): entry,
			consts.LastUpdated:                         now,
		},
		"$inc": bson.M{consts.Version: 1},
	}
}

// casUpdate 仅当版本号未变化时更新
func (m *MongoMapper) casUpdate(ctx context.Context, conv *Conversation, update bson.M) error {
	res, err := m.conn.UpdateOne(ctx, cacheKey(conv.ConversationID), casFilter(conv), update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return consts.ErrConflict
	}
	return nil
}

// casFilter 命中读取时的同一版本且未被删除的文档
func casFilter(conv *Conversation) bson.M {
	return bson.M{
		consts.ID:      conv.ID,
		consts.Version: versionFilter(conv.Version),
		consts.Deleted: bson.M{"$ne": true},
	}
}

// versionFilter 没有 version 字段的历史文档视为版本 0
func versionFilter(v int64) any {
	if v == 0 {
		return bson.M{"$in": bson.A{0, nil}}
	}
	return v
}

// SoftDelete 软删除(房间, 用户)下的对话, 返回受影响的文档数
func (m *MongoMapper) SoftDelete(ctx context.Context, roomID, userID string) (int64, error) {
	conv, err := m.FindActive(ctx, roomID, userID)
	if errors.Is(err, consts.ErrNotFound) {
		return 0, nil
	} else if err != nil {
		return 0, err
	}
	now := time.Now()
	res, err := m.conn.UpdateOne(ctx, cacheKey(conv.ConversationID), bson.M{
		consts.ID:      conv.ID,
		consts.Deleted: bson.M{"$ne": true},
	}, bson.M{
		"$set": bson.M{consts.Deleted: true, consts.DeletedAt: now, consts.LastUpdated: now},
		"$inc": bson.M{consts.Version: 1},
	})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// SoftDeleteStep 软删除某一步骤的槽位, 之后该步骤的提问会开启新的槽位
func (m *MongoMapper) SoftDeleteStep(ctx context.Context, roomID, userID string, step int) (bool, error) {
	conv, err := m.FindActive(ctx, roomID, userID)
	if err != nil {
		return false, err
	}
	if conv.ActiveStep(step) < 0 {
		return false, nil
	}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []any{bson.M{"s." + consts.Step: step, "s." + consts.Deleted: bson.M{"$ne": true}}},
	})
	res, err := m.conn.UpdateOne(ctx, cacheKey(conv.ConversationID), bson.M{
		consts.ID: conv.ID,
	}, bson.M{
		"$set": bson.M{consts.QnAList + ".$[s]." + consts.Deleted: true, consts.LastUpdated: time.Now()},
		"$inc": bson.M{consts.Version: 1},
	}, opts)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}
