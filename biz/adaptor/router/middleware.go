package router

import (
	"context"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	hertz "github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/golang-jwt/jwt/v4"
	"github.com/hertz-contrib/cors"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/config"
	"github.com/quang08/SmartDoc-SSP/biz/infrastructure/consts"
	bizerrors "github.com/xh-polaris/gopkg/errors"
	"github.com/xh-polaris/gopkg/util/log"
)

// UserKey 鉴权通过后用户 id 在请求上下文中的 key
const UserKey = "auth_user_id"

func _rootMw() []app.HandlerFunc {
	cc := cors.Config{
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	// 未配置来源时放开所有来源
	if c := config.GetConfig(); c != nil && len(c.Cors.Origins) > 0 {
		cc.AllowOrigins = c.Cors.Origins
	} else {
		cc.AllowAllOrigins = true
		cc.AllowCredentials = false
	}
	return []app.HandlerFunc{cors.New(cc)}
}

// _apiMw 配置了密钥时校验 Bearer token, 未配置时放行
func _apiMw() []app.HandlerFunc {
	c := config.GetConfig()
	if c == nil || c.Auth.SecretKey == "" {
		return nil
	}
	return []app.HandlerFunc{jwtAuth(c.Auth.SecretKey)}
}

func _chatwsMw() []app.HandlerFunc {
	return nil
}

func jwtAuth(secret string) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		token := bearer(c)
		if token == "" {
			unauthorized(c)
			return
		}
		claims := &jwt.RegisteredClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !parsed.Valid {
			log.CtxInfo(ctx, "[jwtAuth] invalid token, path=%s, err=%v", c.Path(), err)
			unauthorized(c)
			return
		}
		c.Set(UserKey, claims.Subject)
		c.Next(ctx)
	}
}

// bearer 浏览器的 websocket 无法设置请求头, 因此也接受 token 查询参数
func bearer(c *app.RequestContext) string {
	h := string(c.GetHeader("Authorization"))
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return c.Query("token")
}

func unauthorized(c *app.RequestContext) {
	c.AbortWithStatusJSON(hertz.StatusUnauthorized, &bizerrors.BizError{
		Code: uint32(consts.ErrInvalidUser.Code()),
		Msg:  consts.ErrInvalidUser.Error(),
	})
}
