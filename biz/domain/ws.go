package domain

import (
	"sync"

	"github.com/hertz-contrib/websocket"
	"github.com/quang08/SmartDoc-SSP/biz/application/dto"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/consts"
)

// WsHelper 是封装Websocket协议的工具类
// 单协程读, 写操作加锁
type WsHelper struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func NewWsHelper(conn *websocket.Conn) *WsHelper {
	return &WsHelper{
		mu:   sync.Mutex{},
		conn: conn,
	}
}

// ReadJSON 从流中获取一个Json对象， 需要传入指针
func (ws *WsHelper) ReadJSON(obj any) error {
	return ws.conn.ReadJSON(obj)
}

// Error 写入一个错误信息
func (ws *WsHelper) Error(cmd int64, errno *consts.Errno) error {
	return ws.WriteJSON(&dto.ChatResp{
		Cmd:  cmd,
		Code: errno.Code(),
		Msg:  errno.Error(),
	})
}

// WriteJSON 写入一个Json对象
func (ws *WsHelper) WriteJSON(obj any) error {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	return ws.conn.WriteJSON(obj)
}

// Close 关闭连接
func (ws *WsHelper) Close() error {
	return ws.conn.Close()
}
