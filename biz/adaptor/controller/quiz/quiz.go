package quiz

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/quang08/SmartDoc-SSP/biz/adaptor"
	"github.com/quang08/SmartDoc-SSP/biz/adaptor/cmd"
	"github.com/quang08/SmartDoc-SSP/provider"
)

// GenerateQuiz 按课件生成练习题
// @router /generate-quiz [POST]
func GenerateQuiz(ctx context.Context, c *app.RequestContext) {
	var err error
	var req cmd.QuizReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.QuizService.GenerateQuiz(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetTests .
// @router /get-tests [GET]
func GetTests(ctx context.Context, c *app.RequestContext) {
	var err error
	var req cmd.GetTestsReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.QuizService.GetTests(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetQuestions .
// @router /questions [GET]
func GetQuestions(ctx context.Context, c *app.RequestContext) {
	var err error
	var req cmd.GetQuestionsReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.QuizService.GetQuestions(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// CheckAvailability 房间内是否已有练习题
// @router /check-availability [GET]
func CheckAvailability(ctx context.Context, c *app.RequestContext) {
	var err error
	var req cmd.CheckAvailabilityReq
	err = c.BindAndValidate(&req)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.QuizService.CheckAvailability(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
