package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/socialnet/internal/api/middleware"
	"github.com/d60-Lab/socialnet/internal/model"
	"github.com/d60-Lab/socialnet/pkg/response"
)

type tipRequest struct {
	Recipient string `json:"recipient" binding:"required"`
	Amount    uint64 `json:"amount" binding:"required"`
}

type creditRequest struct {
	Amount uint64 `json:"amount" binding:"required"`
}

// Tip 打赏
// @Summary 打赏用户（原子借贷记 + 账本追加）
// @Tags 账本
// @Accept json
// @Produce json
// @Param request body tipRequest true "打赏信息"
// @Success 200 {object} response.Response
// @Failure 402 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/payments/tip [post]
func (h *Handler) Tip(c *gin.Context) {
	var req tipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	err := h.paymentSvc.Tip(c.Request.Context(), middleware.Caller(c), model.UserID(req.Recipient), req.Amount)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Success(c, nil)
}

// GetBalance 余额查询（未知用户返回 0）
// @Summary 查询余额
// @Tags 账本
// @Param user_id path string true "用户ID"
// @Success 200 {object} response.Response
// @Router /api/v1/users/{user_id}/balance [get]
func (h *Handler) GetBalance(c *gin.Context) {
	id := model.UserID(c.Param("user_id"))
	response.Success(c, gin.H{"balance": h.paymentSvc.GetBalance(c.Request.Context(), id)})
}

// ListTransactions 自己的账本条目
// @Summary 查询与自己相关的转账记录
// @Tags 账本
// @Success 200 {object} response.Response
// @Router /api/v1/payments/transactions [get]
func (h *Handler) ListTransactions(c *gin.Context) {
	response.Success(c, h.paymentSvc.ListTransactions(c.Request.Context(), middleware.Caller(c)))
}

// Credit 管理性充值；授权由路由上的 RequireAdmin 完成
// @Summary 给用户充值（仅管理员，账本类型 reward）
// @Tags 管理
// @Accept json
// @Produce json
// @Param user_id path string true "用户ID"
// @Param request body creditRequest true "充值金额"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/admin/users/{user_id}/credit [post]
func (h *Handler) Credit(c *gin.Context) {
	var req creditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	id := model.UserID(c.Param("user_id"))
	if err := h.paymentSvc.Credit(c.Request.Context(), id, req.Amount); err != nil {
		response.Err(c, err)
		return
	}
	response.Success(c, nil)
}
