package service

import (
	"context"
	"time"

	"github.com/d60-Lab/socialnet/internal/errs"
	"github.com/d60-Lab/socialnet/internal/model"
	"github.com/d60-Lab/socialnet/internal/store"
)

// PostService 帖子生命周期、点赞、转发与信息流
type PostService interface {
	CreatePost(ctx context.Context, caller model.UserID, content string, mediaURL *string) (*model.Post, error)
	SharePost(ctx context.Context, caller model.UserID, originalPostID string, comment *string) (*model.Post, error)
	LikePost(ctx context.Context, caller model.UserID, postID string) error
	UnlikePost(ctx context.Context, caller model.UserID, postID string) error
	GetPost(ctx context.Context, postID string) (*model.Post, bool)
	GetUserPosts(ctx context.Context, id model.UserID) []*model.Post
	GetFeed(ctx context.Context, id model.UserID, limit, offset int) []*model.Post
	SearchPosts(ctx context.Context, query string) []*model.Post
	GetPostsSince(ctx context.Context, ts time.Time) []*model.Post
	RemovePost(ctx context.Context, postID string) error
}

type postService struct {
	store *store.Store
}

func NewPostService(s *store.Store) PostService { return &postService{store: s} }

func (s *postService) CreatePost(ctx context.Context, caller model.UserID, content string, mediaURL *string) (*model.Post, error) {
	if caller == model.Anonymous {
		return nil, errs.Unauthenticated("anonymous users cannot create posts")
	}
	if isBlank(content) && mediaURL == nil {
		return nil, errs.InvalidInput("post cannot be empty")
	}
	if len(content) > maxContentLen {
		return nil, errs.InvalidInput("post content too long")
	}
	return s.store.CreatePost(caller, sanitizeContent(content), mediaURL)
}

func (s *postService) SharePost(ctx context.Context, caller model.UserID, originalPostID string, comment *string) (*model.Post, error) {
	if caller == model.Anonymous {
		return nil, errs.Unauthenticated("anonymous users cannot share posts")
	}
	return s.store.SharePost(caller, originalPostID, comment)
}

func (s *postService) LikePost(ctx context.Context, caller model.UserID, postID string) error {
	return s.store.LikePost(caller, postID)
}

func (s *postService) UnlikePost(ctx context.Context, caller model.UserID, postID string) error {
	return s.store.UnlikePost(caller, postID)
}

func (s *postService) GetPost(ctx context.Context, postID string) (*model.Post, bool) {
	return s.store.GetPost(postID)
}

func (s *postService) GetUserPosts(ctx context.Context, id model.UserID) []*model.Post {
	return s.store.UserPosts(id)
}

func (s *postService) GetFeed(ctx context.Context, id model.UserID, limit, offset int) []*model.Post {
	return s.store.Feed(id, limit, offset)
}

func (s *postService) SearchPosts(ctx context.Context, query string) []*model.Post {
	return s.store.SearchPosts(query)
}

func (s *postService) GetPostsSince(ctx context.Context, ts time.Time) []*model.Post {
	return s.store.PostsSince(ts)
}

// RemovePost 管理员专用；调用方授权在边界层完成，此处默认已通过
func (s *postService) RemovePost(ctx context.Context, postID string) error {
	return s.store.RemovePost(postID)
}
