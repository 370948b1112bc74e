package handler

import (
	"github.com/d60-Lab/socialnet/internal/service"
)

// Handler 聚合各服务的 HTTP 适配层
type Handler struct {
	userSvc    service.UserService
	postSvc    service.PostService
	commentSvc service.CommentService
	paymentSvc service.PaymentService
}

func New(userSvc service.UserService, postSvc service.PostService, commentSvc service.CommentService, paymentSvc service.PaymentService) *Handler {
	return &Handler{
		userSvc:    userSvc,
		postSvc:    postSvc,
		commentSvc: commentSvc,
		paymentSvc: paymentSvc,
	}
}
