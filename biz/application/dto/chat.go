package dto

import (
	"github.com/quang08/SmartDoc-SSP/biz/adaptor/cmd"
)

type (
	// ChatReq 长连接中的一条请求
	ChatReq struct {
		// 命令, 0提问, 1心跳, -1结束
		Cmd int64       `json:"cmd"`
		QnA *cmd.QnAReq `json:"qna,omitempty"`
	}

	// ChatResp 长连接中的一条响应
	ChatResp struct {
		Cmd  int64        `json:"cmd"`
		Code int          `json:"code"`
		Msg  string       `json:"msg,omitempty"`
		Data *cmd.QnAResp `json:"data,omitempty"`
	}
)

// QnAOutput 模型返回的问答结果, 其余字段由服务端计算
type QnAOutput struct {
	Step     *int   `json:"step"`
	StepName string `json:"step_name"`
	Answer   string `json:"answer"`
}
