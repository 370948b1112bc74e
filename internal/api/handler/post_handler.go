package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/socialnet/internal/api/middleware"
	"github.com/d60-Lab/socialnet/internal/model"
	"github.com/d60-Lab/socialnet/pkg/response"
)

type createPostRequest struct {
	Content  string  `json:"content"`
	MediaURL *string `json:"media_url"`
}

type sharePostRequest struct {
	Comment *string `json:"comment"`
}

// CreatePost 发帖
// @Summary 创建帖子
// @Tags 帖子
// @Accept json
// @Produce json
// @Param request body createPostRequest true "帖子内容"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/posts [post]
func (h *Handler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	post, err := h.postSvc.CreatePost(c.Request.Context(), middleware.Caller(c), req.Content, req.MediaURL)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Created(c, post)
}

// SharePost 转发
// @Summary 转发帖子
// @Tags 帖子
// @Accept json
// @Produce json
// @Param post_id path string true "原帖ID"
// @Param request body sharePostRequest false "转发附言"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/posts/{post_id}/share [post]
func (h *Handler) SharePost(c *gin.Context) {
	var req sharePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	post, err := h.postSvc.SharePost(c.Request.Context(), middleware.Caller(c), c.Param("post_id"), req.Comment)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Created(c, post)
}

// LikePost 点赞
// @Summary 点赞帖子
// @Tags 帖子
// @Param post_id path string true "帖子ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/posts/{post_id}/like [post]
func (h *Handler) LikePost(c *gin.Context) {
	if err := h.postSvc.LikePost(c.Request.Context(), middleware.Caller(c), c.Param("post_id")); err != nil {
		response.Err(c, err)
		return
	}
	response.Success(c, nil)
}

// UnlikePost 取消点赞
// @Summary 取消点赞
// @Tags 帖子
// @Param post_id path string true "帖子ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/posts/{post_id}/like [delete]
func (h *Handler) UnlikePost(c *gin.Context) {
	if err := h.postSvc.UnlikePost(c.Request.Context(), middleware.Caller(c), c.Param("post_id")); err != nil {
		response.Err(c, err)
		return
	}
	response.Success(c, nil)
}

// GetPost 查询帖子
// @Summary 查询单个帖子
// @Tags 帖子
// @Param post_id path string true "帖子ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/posts/{post_id} [get]
func (h *Handler) GetPost(c *gin.Context) {
	post, ok := h.postSvc.GetPost(c.Request.Context(), c.Param("post_id"))
	if !ok {
		response.NotFound(c, "post not found")
		return
	}
	response.Success(c, post)
}

// GetUserPosts 用户帖子列表
// @Summary 查询用户的帖子（插入顺序）
// @Tags 帖子
// @Param user_id path string true "用户ID"
// @Success 200 {object} response.Response
// @Router /api/v1/users/{user_id}/posts [get]
func (h *Handler) GetUserPosts(c *gin.Context) {
	id := model.UserID(c.Param("user_id"))
	response.Success(c, h.postSvc.GetUserPosts(c.Request.Context(), id))
}

// GetFeed 信息流
// @Summary 查询信息流（自己 + 关注对象，按时间降序）
// @Tags 帖子
// @Param limit query int false "数量" default(20)
// @Param offset query int false "偏移" default(0)
// @Success 200 {object} response.Response
// @Router /api/v1/feed [get]
func (h *Handler) GetFeed(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}
	response.Success(c, h.postSvc.GetFeed(c.Request.Context(), middleware.Caller(c), limit, offset))
}

// SearchPosts 帖子搜索
// @Summary 按内容搜索帖子
// @Tags 帖子
// @Param q query string true "关键词"
// @Success 200 {object} response.Response
// @Router /api/v1/posts/search [get]
func (h *Handler) SearchPosts(c *gin.Context) {
	response.Success(c, h.postSvc.SearchPosts(c.Request.Context(), c.Query("q")))
}

// GetLatestPosts 轮询式实时更新
// @Summary 查询某时刻之后的新帖（since 为 unix 纳秒）
// @Tags 帖子
// @Param since query int true "unix 纳秒时间戳"
// @Success 200 {object} response.Response
// @Router /api/v1/posts/latest [get]
func (h *Handler) GetLatestPosts(c *gin.Context) {
	since, err := strconv.ParseInt(c.Query("since"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid since timestamp")
		return
	}
	response.Success(c, h.postSvc.GetPostsSince(c.Request.Context(), time.Unix(0, since)))
}

// RemovePost 管理员删帖；RequireAdmin 中间件已在路由上完成授权
// @Summary 删除帖子（仅管理员）
// @Tags 管理
// @Param post_id path string true "帖子ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/admin/posts/{post_id} [delete]
func (h *Handler) RemovePost(c *gin.Context) {
	if err := h.postSvc.RemovePost(c.Request.Context(), c.Param("post_id")); err != nil {
		response.Err(c, err)
		return
	}
	response.Success(c, nil)
}
