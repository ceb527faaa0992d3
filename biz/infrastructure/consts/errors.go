package consts

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Errno struct {
	err  error
	code codes.Code
}

// GRPCStatus 实现 GRPCStatus 方法
func (en *Errno) GRPCStatus() *status.Status {
	return status.New(en.code, en.err.Error())
}

// 实现 Error 方法
func (en *Errno) Error() string {
	return en.err.Error()
}

// Code 返回错误码
func (en *Errno) Code() int { return int(en.code) }

// Is 同码即同类错误, 便于对带上下文的错误使用 errors.Is
func (en *Errno) Is(target error) bool {
	var t *Errno
	if !errors.As(target, &t) {
		return false
	}
	return t.code == en.code
}

// NewErrno 创建自定义错误
func NewErrno(code codes.Code, err error) *Errno {
	return &Errno{
		err:  err,
		code: code,
	}
}

// With 在保留错误码的前提下附加上下文信息
func (en *Errno) With(format string, args ...any) *Errno {
	return NewErrno(en.code, fmt.Errorf("%s: %s", en.err.Error(), fmt.Sprintf(format, args...)))
}

// 定义常量错误
var (
	ErrForbidden   = NewErrno(codes.PermissionDenied, errors.New("forbidden"))
	ErrWsUpgrade   = NewErrno(codes.Code(1000), errors.New("websocket协议升级失败"))
	ErrInvalidUser = NewErrno(codes.Code(1001), errors.New("非授权用户，请重试或切换账号"))
	ErrValidation  = NewErrno(codes.Code(1002), errors.New("请求参数错误"))
	ErrNotFound    = NewErrno(codes.Code(1003), errors.New("conversation not found"))
	ErrModel       = NewErrno(codes.Code(1004), errors.New("failed to generate content"))
	ErrStorage     = NewErrno(codes.Code(1005), errors.New("database error"))
	ErrConflict    = NewErrno(codes.Code(1006), errors.New("concurrent update conflict"))
)
