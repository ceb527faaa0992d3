package escalation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/config"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/consts"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/mapper/conversation"
	"github.com/xh-polaris/gopkg/util/log"
)

// Store 对话的持久化, 两个更新操作都必须是带版本校验的单文档原子更新
// 版本不一致时返回 consts.ErrConflict
type Store interface {
	FindActive(ctx context.Context, roomID, userID string) (*conversation.Conversation, error)
	Create(ctx context.Context, conv *conversation.Conversation) error
	AppendStep(ctx context.Context, conv *conversation.Conversation, entry *conversation.StepEntry) error
	EscalateStep(ctx context.Context, conv *conversation.Conversation, index int, entry *conversation.StepEntry) error
}

// Locker 按 key 互斥
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// Target 一次交互所属的对话
type Target struct {
	RoomID    string
	DocID     string
	UserID    string
	UserEmail string
	LabName   string
}

// Engine 负责把一次交互合并进持久化的对话
// 对话不存在时创建, 步骤不存在时追加, 步骤已存在时升级(归档旧回答并覆盖)
type Engine struct {
	store    Store
	locker   Locker
	attempts int
	now      func() time.Time
	newID    func() string
}

func NewEngine(c *config.Config, store Store, locker Locker) *Engine {
	attempts := c.Tutor.MergeAttempts
	if attempts <= 0 {
		attempts = 3
	}
	return &Engine{
		store:    store,
		locker:   locker,
		attempts: attempts,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Merge 合并一次交互, 返回对话 id
// 同一(房间, 用户, 步骤)的合并互斥执行, 版本冲突时重新读取后再应用, 其余存储错误直接返回
func (e *Engine) Merge(ctx context.Context, t *Target, entry *conversation.StepEntry) (string, error) {
	unlock, err := e.locker.Lock(ctx, lockKey(t, entry.Step))
	if err != nil {
		return "", consts.ErrStorage.With("lock step %d: %v", entry.Step, err)
	}
	defer unlock()

	normalize(entry)
	for attempt := 1; attempt <= e.attempts; attempt++ {
		var id string
		id, err = e.apply(ctx, t, entry)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, consts.ErrConflict) {
			return "", consts.ErrStorage.With("%v", err)
		}
		log.CtxInfo(ctx, "[Merge] version conflict, room=%s, user=%s, step=%d, attempt=%d", t.RoomID, t.UserID, entry.Step, attempt)
	}
	return "", consts.ErrStorage.With("merge step %d: %v", entry.Step, err)
}

// apply 读取当前对话并执行一次 创建/追加/升级
func (e *Engine) apply(ctx context.Context, t *Target, entry *conversation.StepEntry) (string, error) {
	conv, err := e.store.FindActive(ctx, t.RoomID, t.UserID)
	switch {
	case errors.Is(err, consts.ErrNotFound):
		conv = e.newConversation(t, entry)
		if err = e.store.Create(ctx, conv); err != nil {
			return "", err
		}
		return conv.ConversationID, nil
	case err != nil:
		return "", err
	}

	if idx := conv.ActiveStep(entry.Step); idx < 0 {
		err = e.store.AppendStep(ctx, conv, entry)
	} else {
		err = e.store.EscalateStep(ctx, conv, idx, Escalate(conv.Steps[idx], entry))
	}
	if err != nil {
		return "", err
	}
	return conv.ConversationID, nil
}

func (e *Engine) newConversation(t *Target, entry *conversation.StepEntry) *conversation.Conversation {
	now := e.now()
	return &conversation.Conversation{
		ConversationID: e.newID(),
		RoomID:         t.RoomID,
		DocID:          t.DocID,
		UserID:         t.UserID,
		UserEmail:      t.UserEmail,
		LabName:        t.LabName,
		Steps:          []*conversation.StepEntry{entry},
		StartedAt:      now,
		LastUpdated:    now,
	}
}

// Escalate 返回升级后的槽位, 不修改入参
// prev 的生效回答(非空时)追加到历史末尾, 学生问题、生效回答和相关上下文被 next 覆盖
func Escalate(prev, next *conversation.StepEntry) *conversation.StepEntry {
	history := make([]*conversation.Interaction, 0, len(prev.History)+1)
	history = append(history, prev.History...)
	if !prev.Interaction.IsEmpty() {
		history = append(history, prev.Interaction)
	}

	name := next.StepName
	if name == "" {
		name = prev.StepName
	}
	relevant := next.RelevantSteps
	if relevant == nil {
		relevant = []int{}
	}
	return &conversation.StepEntry{
		Step:          prev.Step,
		StepName:      name,
		Message:       next.Message,
		Interaction:   next.Interaction,
		History:       history,
		RelevantInfo:  next.RelevantInfo,
		RelevantSteps: relevant,
	}
}

// normalize 新槽位的历史为空数组而不是 null
func normalize(entry *conversation.StepEntry) {
	if entry.History == nil {
		entry.History = []*conversation.Interaction{}
	}
	if entry.RelevantSteps == nil {
		entry.RelevantSteps = []int{}
	}
}

func lockKey(t *Target, step int) string {
	return fmt.Sprintf("tutor:lock:%s:%s:%d", t.RoomID, t.UserID, step)
}
