package util

import (
	"github.com/quang08/SmartDoc-SSP/biz/adaptor/cmd"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/consts"
)

const maxLimit = 1000

// ParsePaging 解析分页参数
func ParsePaging(p *cmd.Paging) (skip, limit int64) {
	skip, limit = p.Skip, p.Limit
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = consts.DefaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return skip, limit
}

// Truncate 按字符(而非字节)截取前 n 个字符
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
