package service

import (
	"context"

	"github.com/d60-Lab/socialnet/internal/errs"
	"github.com/d60-Lab/socialnet/internal/model"
	"github.com/d60-Lab/socialnet/internal/store"
)

// CommentService 评论生命周期与点赞，作用域限定在单个帖子内
type CommentService interface {
	CreateComment(ctx context.Context, caller model.UserID, postID, content string) (*model.Comment, error)
	ListComments(ctx context.Context, postID string) []*model.Comment
	LikeComment(ctx context.Context, caller model.UserID, commentID string) error
}

type commentService struct {
	store *store.Store
}

func NewCommentService(s *store.Store) CommentService { return &commentService{store: s} }

func (s *commentService) CreateComment(ctx context.Context, caller model.UserID, postID, content string) (*model.Comment, error) {
	if caller == model.Anonymous {
		return nil, errs.Unauthenticated("anonymous users cannot create comments")
	}
	if isBlank(content) {
		return nil, errs.InvalidInput("comment cannot be empty")
	}
	if len(content) > maxContentLen {
		return nil, errs.InvalidInput("comment content too long")
	}
	return s.store.CreateComment(caller, postID, sanitizeContent(content))
}

func (s *commentService) ListComments(ctx context.Context, postID string) []*model.Comment {
	return s.store.PostComments(postID)
}

func (s *commentService) LikeComment(ctx context.Context, caller model.UserID, commentID string) error {
	return s.store.LikeComment(caller, commentID)
}
