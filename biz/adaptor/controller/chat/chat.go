package chat

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/quang08/SmartDoc-SSP/biz/adaptor"
	"github.com/quang08/SmartDoc-SSP/biz/adaptor/cmd"
	"github.com/quang08/SmartDoc-SSP/provider"
	"github.com/xh-polaris/gopkg/util/log"
)

// Ask 针对某一步骤提问一次
// @router /chat [POST]
func Ask(ctx context.Context, c *app.RequestContext) {
	var err error
	var req cmd.QnAReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.TutorService.Ask(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// LongChat 开启一轮长对话
// @router /chat/ws [GET]
func LongChat(ctx context.Context, c *app.RequestContext) {
	// 尝试升级协议, 并处理
	err := adaptor.UpgradeWs(ctx, c, provider.Get().ChatService.ChatHandler)
	if err != nil {
		log.Error(err.Error())
	}
}
