package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/socialnet/internal/api/middleware"
	"github.com/d60-Lab/socialnet/pkg/response"
)

type createCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreateComment 发表评论
// @Summary 评论帖子
// @Tags 评论
// @Accept json
// @Produce json
// @Param post_id path string true "帖子ID"
// @Param request body createCommentRequest true "评论内容"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/posts/{post_id}/comments [post]
func (h *Handler) CreateComment(c *gin.Context) {
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	comment, err := h.commentSvc.CreateComment(c.Request.Context(), middleware.Caller(c), c.Param("post_id"), req.Content)
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Created(c, comment)
}

// ListComments 评论列表
// @Summary 查询帖子评论（插入顺序）
// @Tags 评论
// @Param post_id path string true "帖子ID"
// @Success 200 {object} response.Response
// @Router /api/v1/posts/{post_id}/comments [get]
func (h *Handler) ListComments(c *gin.Context) {
	response.Success(c, h.commentSvc.ListComments(c.Request.Context(), c.Param("post_id")))
}

// LikeComment 点赞评论
// @Summary 点赞评论
// @Tags 评论
// @Param comment_id path string true "评论ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/comments/{comment_id}/like [post]
func (h *Handler) LikeComment(c *gin.Context) {
	if err := h.commentSvc.LikeComment(c.Request.Context(), middleware.Caller(c), c.Param("comment_id")); err != nil {
		response.Err(c, err)
		return
	}
	response.Success(c, nil)
}
