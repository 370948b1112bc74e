package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/socialnet/internal/errs"
)

// Response 统一 JSON 信封
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Code: http.StatusOK, Message: "ok", Data: data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Response{Code: http.StatusCreated, Message: "ok", Data: data})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, Response{Code: http.StatusBadRequest, Message: msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, Response{Code: http.StatusNotFound, Message: msg})
}

func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Response{Code: http.StatusInternalServerError, Message: err.Error()})
}

// Err 按错误分类映射 HTTP 状态码
func Err(c *gin.Context, err error) {
	status := statusOf(errs.KindOf(err))
	c.JSON(status, Response{Code: status, Message: err.Error()})
}

func statusOf(kind errs.Kind) int {
	switch kind {
	case errs.KindUnauthenticated:
		return http.StatusUnauthorized
	case errs.KindUnauthorized:
		return http.StatusForbidden
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindAlreadyExists, errs.KindConflict:
		return http.StatusConflict
	case errs.KindInvalidInput:
		return http.StatusBadRequest
	case errs.KindInsufficientBalance:
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}
