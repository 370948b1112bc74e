package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/d60-Lab/socialnet/internal/errs"
	"github.com/d60-Lab/socialnet/internal/model"
	"github.com/d60-Lab/socialnet/pkg/response"
)

const callerKey = "caller"

var errAdminOnly = errs.Unauthorized("only admin can perform this operation")

// Auth 解析 Bearer JWT 得到调用方身份。
// 未携带 token 时调用方为匿名哨兵（由服务层决定是否拒绝）；
// 携带但无效的 token 直接 401。
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Set(callerKey, model.Anonymous)
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		caller, err := parseToken(tokenString, secret)
		if err != nil {
			response.Err(c, errs.Unauthenticated("invalid token"))
			c.Abort()
			return
		}
		c.Set(callerKey, caller)
		c.Next()
	}
}

func parseToken(tokenString, secret string) (model.UserID, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("sub is not found in token")
	}
	return model.UserID(sub), nil
}

// Caller 取出当前请求的调用方身份
func Caller(c *gin.Context) model.UserID {
	if v, ok := c.Get(callerKey); ok {
		if id, ok := v.(model.UserID); ok {
			return id
		}
	}
	return model.Anonymous
}

// RequireAdmin 管理操作的边界检查：调用方必须等于配置的 admin 身份
func RequireAdmin(admin model.UserID) gin.HandlerFunc {
	return func(c *gin.Context) {
		if Caller(c) != admin {
			response.Err(c, errAdminOnly)
			c.Abort()
			return
		}
		c.Next()
	}
}
