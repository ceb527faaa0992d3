package conversation

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/quang08/SmartDoc-SSP/biz/adaptor"
	"github.com/quang08/SmartDoc-SSP/biz/adaptor/cmd"
	"github.com/quang08/SmartDoc-SSP/provider"
)

// GetConversation .
// @router /conversation/:room_id/:user_id [GET]
func GetConversation(ctx context.Context, c *app.RequestContext) {
	var err error
	var req cmd.GetConversationReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ConversationService.GetConversation(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetConversationByID .
// @router /conversation/id/:conversation_id [GET]
func GetConversationByID(ctx context.Context, c *app.RequestContext) {
	var err error
	var req cmd.GetConversationByIDReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ConversationService.GetConversationByID(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DeleteConversation 删除对话及该用户在房间内的练习题
// @router /conversation/:room_id/:user_id [DELETE]
func DeleteConversation(ctx context.Context, c *app.RequestContext) {
	var err error
	var req cmd.DeleteConversationReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ConversationService.DeleteConversation(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DeleteStep 删除某一步骤, 之后该步骤的提问重新计数
// @router /conversation/:room_id/:user_id/step/:step [DELETE]
func DeleteStep(ctx context.Context, c *app.RequestContext) {
	var err error
	var req cmd.DeleteStepReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ConversationService.DeleteStep(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
