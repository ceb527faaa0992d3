package system

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/quang08/SmartDoc-SSP/provider"
)

// Root .
// @router / [GET]
func Root(ctx context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, provider.Get().SystemService.Root(ctx))
}

// Health .
// @router /health [GET]
func Health(ctx context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, provider.Get().SystemService.Health(ctx))
}
