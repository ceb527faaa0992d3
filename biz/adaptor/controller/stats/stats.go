package stats

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/quang08/SmartDoc-SSP/biz/adaptor"
	"github.com/quang08/SmartDoc-SSP/biz/adaptor/cmd"
	"github.com/quang08/SmartDoc-SSP/provider"
)

// ListStats 房间内各步骤的提问统计
// @router /stats/:room_id [GET]
func ListStats(ctx context.Context, c *app.RequestContext) {
	var err error
	var req cmd.ListStatsReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.StatsService.ListStats(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
