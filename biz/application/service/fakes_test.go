package service

import (
	"context"
	"sync"
	"time"

	"github.com/quang08/SmartDoc-SSP/biz/adaptor/cmd"
	"github.com/quang08/SmartDoc-SSP/biz/domain/escalation"
	"github.com/quang08/SmartDoc-SSP/biz/domain/model"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/config"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/consts"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/lock"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/mapper/conversation"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/mapper/practice"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/mq"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memConversations 内存中的对话存储, 同时满足 mapper 和合并引擎的存储接口
type memConversations struct {
	mu    sync.Mutex
	convs []*conversation.Conversation
}

var (
	_ conversation.IMongoMapper = (*memConversations)(nil)
	_ escalation.Store          = (*memConversations)(nil)
)

func copyConv(c *conversation.Conversation) *conversation.Conversation {
	cp := *c
	cp.Steps = append([]*conversation.StepEntry(nil), c.Steps...)
	return &cp
}

func (m *memConversations) active(roomID, userID string) (int, *conversation.Conversation) {
	for i, c := range m.convs {
		if c.RoomID == roomID && c.UserID == userID && !c.Deleted {
			return i, c
		}
	}
	return -1, nil
}

func (m *memConversations) FindActive(_ context.Context, roomID, userID string) (*conversation.Conversation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, c := m.active(roomID, userID); c != nil {
		return copyConv(c), nil
	}
	return nil, consts.ErrNotFound
}

func (m *memConversations) FindByConversationID(_ context.Context, id string) (*conversation.Conversation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.convs {
		if c.ConversationID == id {
			return copyConv(c), nil
		}
	}
	return nil, consts.ErrNotFound
}

func (m *memConversations) Create(_ context.Context, conv *conversation.Conversation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, c := m.active(conv.RoomID, conv.UserID); c != nil {
		return consts.ErrConflict
	}
	m.convs = append(m.convs, copyConv(conv))
	return nil
}

func (m *memConversations) update(conv *conversation.Conversation, mutate func(c *conversation.Conversation)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, c := m.active(conv.RoomID, conv.UserID)
	if c == nil || c.Version != conv.Version {
		return consts.ErrConflict
	}
	next := copyConv(c)
	mutate(next)
	next.Version++
	next.LastUpdated = time.Now()
	m.convs[i] = next
	return nil
}

func (m *memConversations) AppendStep(_ context.Context, conv *conversation.Conversation, entry *conversation.StepEntry) error {
	return m.update(conv, func(c *conversation.Conversation) {
		c.Steps = append(c.Steps, entry)
	})
}

func (m *memConversations) EscalateStep(_ context.Context, conv *conversation.Conversation, index int, entry *conversation.StepEntry) error {
	return m.update(conv, func(c *conversation.Conversation) {
		c.Steps[index] = entry
	})
}

func (m *memConversations) SoftDelete(_ context.Context, roomID, userID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, c := range m.convs {
		if c.RoomID == roomID && c.UserID == userID && !c.Deleted {
			c.Deleted = true
			n++
		}
	}
	return n, nil
}

func (m *memConversations) SoftDeleteStep(_ context.Context, roomID, userID string, step int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, c := m.active(roomID, userID)
	if c == nil {
		return false, consts.ErrNotFound
	}
	idx := c.ActiveStep(step)
	if idx < 0 {
		return false, nil
	}
	e := *c.Steps[idx]
	e.Deleted = true
	c.Steps[idx] = &e
	c.Version++
	return true, nil
}

// memPractice 内存中的练习题存储
type memPractice struct {
	mu    sync.Mutex
	tests []*practice.PracticeTest
}

var _ practice.IMongoMapper = (*memPractice)(nil)

func (m *memPractice) InsertMany(_ context.Context, tests []*practice.PracticeTest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range tests {
		if t.ID.IsZero() {
			t.ID = primitive.NewObjectID()
		}
		m.tests = append(m.tests, t)
	}
	return nil
}

func (m *memPractice) FindMany(_ context.Context, p *cmd.Paging) ([]*practice.PracticeTest, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*practice.PracticeTest, 0, len(m.tests))
	for i := len(m.tests) - 1; i >= 0; i-- {
		out = append(out, m.tests[i])
	}
	total := int64(len(out))
	if p.Skip > 0 {
		if p.Skip >= total {
			return []*practice.PracticeTest{}, total, nil
		}
		out = out[p.Skip:]
	}
	if p.Limit > 0 && int64(len(out)) > p.Limit {
		out = out[:p.Limit]
	}
	return out, total, nil
}

func (m *memPractice) CountByRoom(_ context.Context, roomID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, t := range m.tests {
		if t.RoomID == roomID {
			n++
		}
	}
	return n, nil
}

func (m *memPractice) DeleteByRoomUser(_ context.Context, roomID, userID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.tests[:0]
	var n int64
	for _, t := range m.tests {
		if t.RoomID == roomID && t.UserID == userID {
			n++
			continue
		}
		kept = append(kept, t)
	}
	m.tests = kept
	return n, nil
}

// fakeChat 按调用顺序返回预设的输出
type fakeChat struct {
	mu      sync.Mutex
	reply   func(req *model.CallReq) (string, error)
	prompts []*model.CallReq
}

func (f *fakeChat) Call(_ context.Context, req *model.CallReq) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, req)
	f.mu.Unlock()
	return f.reply(req)
}

func (f *fakeChat) Close() error { return nil }

func (f *fakeChat) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

// recordPublisher 同步记录发布的事件
type recordPublisher struct {
	mu     sync.Mutex
	events []*mq.InteractionEvent
}

func (p *recordPublisher) Publish(_ context.Context, ev *mq.InteractionEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
}

func testConfig() *config.Config {
	c := new(config.Config)
	c.Model.Language = consts.DefaultLanguage
	c.Model.Timeout = 5
	c.Tutor.MergeAttempts = 3
	return c
}

type tutorFixture struct {
	svc   *TutorService
	store *memConversations
	chat  *fakeChat
	pub   *recordPublisher
}

func newTutorFixture(reply func(req *model.CallReq) (string, error)) *tutorFixture {
	c := testConfig()
	store := new(memConversations)
	chat := &fakeChat{reply: reply}
	pub := new(recordPublisher)
	return &tutorFixture{
		svc: &TutorService{
			Config:             c,
			ConversationMapper: store,
			Engine:             escalation.NewEngine(c, store, lock.NewLocalLocker()),
			ChatApp:            chat,
			Publisher:          pub,
		},
		store: store,
		chat:  chat,
		pub:   pub,
	}
}
