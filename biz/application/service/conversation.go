package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/quang08/SmartDoc-SSP/biz/adaptor/cmd"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/consts"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/mapper/conversation"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/mapper/practice"
	"github.com/xh-polaris/gopkg/util/log"
)

const notFound = "Conversation not found"

type IConversationService interface {
	GetConversation(ctx context.Context, req *cmd.GetConversationReq) (*cmd.ConversationResp, error)
	GetConversationByID(ctx context.Context, req *cmd.GetConversationByIDReq) (*cmd.ConversationResp, error)
	DeleteConversation(ctx context.Context, req *cmd.DeleteConversationReq) (*cmd.DeleteConversationResp, error)
	DeleteStep(ctx context.Context, req *cmd.DeleteStepReq) (*cmd.DeleteStepResp, error)
}

type ConversationService struct {
	ConversationMapper conversation.IMongoMapper
	PracticeMapper     practice.IMongoMapper
}

var ConversationServiceSet = wire.NewSet(
	wire.Struct(new(ConversationService), "*"),
	wire.Bind(new(IConversationService), new(*ConversationService)),
)

// GetConversation 查询(房间, 用户)下未删除的对话, 不存在时返回 success=false 而不是错误
func (s *ConversationService) GetConversation(ctx context.Context, req *cmd.GetConversationReq) (*cmd.ConversationResp, error) {
	conv, err := s.ConversationMapper.FindActive(ctx, req.RoomID, req.UserID)
	switch {
	case errors.Is(err, consts.ErrNotFound):
		return &cmd.ConversationResp{
			Success: false,
			Error:   notFound,
			Message: fmt.Sprintf("No conversation found for room %s and user %s", req.RoomID, req.UserID),
		}, nil
	case err != nil:
		return nil, consts.ErrStorage.With("%v", err)
	}

	data, err := toConversation(conv)
	if err != nil {
		return nil, err
	}
	return &cmd.ConversationResp{
		Success:      true,
		Conversation: data,
		Message:      fmt.Sprintf("Retrieved conversation for room %s and user %s", req.RoomID, req.UserID),
	}, nil
}

// GetConversationByID 按对话 id 查询, 已软删除的对话同样可以查到
func (s *ConversationService) GetConversationByID(ctx context.Context, req *cmd.GetConversationByIDReq) (*cmd.ConversationResp, error) {
	conv, err := s.ConversationMapper.FindByConversationID(ctx, req.ConversationID)
	switch {
	case errors.Is(err, consts.ErrNotFound):
		return &cmd.ConversationResp{
			Success: false,
			Error:   notFound,
			Message: fmt.Sprintf("No conversation found with ID %s", req.ConversationID),
		}, nil
	case err != nil:
		return nil, consts.ErrStorage.With("%v", err)
	}

	data, err := toConversation(conv)
	if err != nil {
		return nil, err
	}
	return &cmd.ConversationResp{
		Success:      true,
		Conversation: data,
		Message:      fmt.Sprintf("Retrieved conversation with ID %s", req.ConversationID),
	}, nil
}

// DeleteConversation 软删除对话并删除该用户在房间内生成的练习题
func (s *ConversationService) DeleteConversation(ctx context.Context, req *cmd.DeleteConversationReq) (*cmd.DeleteConversationResp, error) {
	tests, err := s.PracticeMapper.DeleteByRoomUser(ctx, req.RoomID, req.UserID)
	if err != nil {
		return nil, consts.ErrStorage.With("delete practice tests: %v", err)
	}
	convs, err := s.ConversationMapper.SoftDelete(ctx, req.RoomID, req.UserID)
	if err != nil {
		return nil, consts.ErrStorage.With("delete conversation: %v", err)
	}
	deleted := tests + convs
	log.CtxInfo(ctx, "[DeleteConversation] room=%s user=%s tests=%d conversations=%d", req.RoomID, req.UserID, tests, convs)
	return &cmd.DeleteConversationResp{
		Success:      true,
		DeletedCount: deleted,
		Message:      fmt.Sprintf("Deleted %d chat entries for room %s and user %s.", deleted, req.RoomID, req.UserID),
	}, nil
}

// DeleteStep 软删除某一步骤, 之后对该步骤的提问从零开始计数
func (s *ConversationService) DeleteStep(ctx context.Context, req *cmd.DeleteStepReq) (*cmd.DeleteStepResp, error) {
	ok, err := s.ConversationMapper.SoftDeleteStep(ctx, req.RoomID, req.UserID, req.Step)
	switch {
	case errors.Is(err, consts.ErrNotFound):
		return &cmd.DeleteStepResp{Success: false, Error: notFound}, nil
	case err != nil:
		return nil, consts.ErrStorage.With("%v", err)
	}
	if !ok {
		return &cmd.DeleteStepResp{
			Success: true,
			Deleted: false,
			Message: fmt.Sprintf("Step %d has no active entry", req.Step),
		}, nil
	}
	return &cmd.DeleteStepResp{
		Success: true,
		Deleted: true,
		Message: fmt.Sprintf("Deleted step %d for room %s and user %s", req.Step, req.RoomID, req.UserID),
	}, nil
}

func toConversation(conv *conversation.Conversation) (*cmd.Conversation, error) {
	data := new(cmd.Conversation)
	if err := copier.Copy(data, conv); err != nil {
		return nil, err
	}
	return data, nil
}
