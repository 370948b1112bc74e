package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/socialnet/internal/api/middleware"
	"github.com/d60-Lab/socialnet/internal/model"
	"github.com/d60-Lab/socialnet/pkg/response"
)

type registerRequest struct {
	Username  string `json:"username" binding:"required,username"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
}

type updateProfileRequest struct {
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
}

// Register 注册资料
// @Summary 注册用户资料
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body registerRequest true "资料信息"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/users [post]
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.userSvc.Register(c.Request.Context(), middleware.Caller(c), req.Username, req.Bio, req.AvatarURL)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Created(c, user)
}

// GetProfile 查询资料
// @Summary 查询用户资料
// @Tags 用户
// @Param user_id path string true "用户ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/users/{user_id} [get]
func (h *Handler) GetProfile(c *gin.Context) {
	id := model.UserID(c.Param("user_id"))
	user, ok := h.userSvc.GetProfile(c.Request.Context(), id)
	if !ok {
		response.NotFound(c, "user not found")
		return
	}
	response.Success(c, user)
}

// UpdateProfile 更新自己的资料
// @Summary 更新用户资料
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body updateProfileRequest true "资料信息"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/users/me [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.userSvc.UpdateProfile(c.Request.Context(), middleware.Caller(c), req.Bio, req.AvatarURL)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Success(c, user)
}

// Follow 关注
// @Summary 关注用户（幂等）
// @Tags 用户
// @Param user_id path string true "被关注用户ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/users/{user_id}/follow [post]
func (h *Handler) Follow(c *gin.Context) {
	target := model.UserID(c.Param("user_id"))
	if err := h.userSvc.Follow(c.Request.Context(), middleware.Caller(c), target); err != nil {
		response.Err(c, err)
		return
	}
	response.Success(c, nil)
}

// Unfollow 取消关注
// @Summary 取消关注（无此边时静默成功）
// @Tags 用户
// @Param user_id path string true "用户ID"
// @Success 200 {object} response.Response
// @Router /api/v1/users/{user_id}/follow [delete]
func (h *Handler) Unfollow(c *gin.Context) {
	target := model.UserID(c.Param("user_id"))
	if err := h.userSvc.Unfollow(c.Request.Context(), middleware.Caller(c), target); err != nil {
		response.Err(c, err)
		return
	}
	response.Success(c, nil)
}

// ListFollowers 粉丝列表
// @Summary 查询粉丝列表
// @Tags 用户
// @Param user_id path string true "用户ID"
// @Success 200 {object} response.Response
// @Router /api/v1/users/{user_id}/followers [get]
func (h *Handler) ListFollowers(c *gin.Context) {
	id := model.UserID(c.Param("user_id"))
	response.Success(c, h.userSvc.ListFollowers(c.Request.Context(), id))
}

// ListFollowing 关注列表
// @Summary 查询关注列表
// @Tags 用户
// @Param user_id path string true "用户ID"
// @Success 200 {object} response.Response
// @Router /api/v1/users/{user_id}/following [get]
func (h *Handler) ListFollowing(c *gin.Context) {
	id := model.UserID(c.Param("user_id"))
	response.Success(c, h.userSvc.ListFollowing(c.Request.Context(), id))
}

// SearchUsers 用户搜索
// @Summary 按用户名或简介搜索用户
// @Tags 用户
// @Param q query string true "关键词"
// @Success 200 {object} response.Response
// @Router /api/v1/users/search [get]
func (h *Handler) SearchUsers(c *gin.Context) {
	response.Success(c, h.userSvc.SearchUsers(c.Request.Context(), c.Query("q")))
}
