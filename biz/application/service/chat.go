package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/wire"
	"github.com/hertz-contrib/websocket"
	"github.com/quang08/SmartDoc-SSP/biz/application/dto"
	"github.com/quang08/SmartDoc-SSP/biz/domain"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/consts"
	"github.com/xh-polaris/gopkg/util/log"
)

// idleTimeout 长连接空闲超过该时间后关闭
const idleTimeout = 10 * time.Minute

type IChatService interface {
	ChatHandler(ctx context.Context, conn *websocket.Conn)
}

// ChatService 在一条长连接上连续处理提问, 每次提问与 /chat 的处理完全一致
type ChatService struct {
	TutorService ITutorService
}

var ChatServiceSet = wire.NewSet(
	wire.Struct(new(ChatService), "*"),
	wire.Bind(new(IChatService), new(*ChatService)),
)

// ChatHandler 处理长对话
func (s *ChatService) ChatHandler(ctx context.Context, conn *websocket.Conn) {
	ws := domain.NewWsHelper(conn)
	defer func() {
		_ = ws.WriteJSON(&dto.ChatResp{Cmd: consts.EndCmd, Msg: "对话结束"})
		if err := ws.Close(); err != nil {
			log.Error("close ws err: %v", err)
		}
	}()

	for {
		_ = conn.SetReadDeadline(time.Now().Add(idleTimeout))
		var req dto.ChatReq
		if err := ws.ReadJSON(&req); err != nil {
			log.CtxInfo(ctx, "[ChatHandler] read finished: %v", err)
			return
		}

		var err error
		switch req.Cmd {
		case consts.EndCmd:
			return
		case consts.Ping:
			err = ws.WriteJSON(&dto.ChatResp{Cmd: consts.Ping})
		case consts.AskCmd:
			err = s.ask(ctx, ws, &req)
		default:
			err = ws.Error(req.Cmd, consts.ErrValidation.With("unknown cmd %d", req.Cmd))
		}
		if err != nil {
			log.CtxError(ctx, "[ChatHandler] write err: %v", err)
			return
		}
	}
}

// ask 处理一次提问, 业务错误写回客户端, 只有写入失败才返回错误
func (s *ChatService) ask(ctx context.Context, ws *domain.WsHelper, req *dto.ChatReq) error {
	if req.QnA == nil {
		return ws.Error(req.Cmd, consts.ErrValidation.With("qna is required"))
	}
	resp, err := s.TutorService.Ask(ctx, req.QnA)
	if err != nil {
		var errno *consts.Errno
		if !errors.As(err, &errno) {
			errno = consts.ErrStorage.With("%v", err)
		}
		return ws.Error(req.Cmd, errno)
	}
	return ws.WriteJSON(&dto.ChatResp{Cmd: req.Cmd, Data: resp})
}
