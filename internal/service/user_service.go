package service

import (
	"context"

	"github.com/d60-Lab/socialnet/internal/errs"
	"github.com/d60-Lab/socialnet/internal/model"
	"github.com/d60-Lab/socialnet/internal/store"
)

// UserService 用户资料与关注链服务
type UserService interface {
	Register(ctx context.Context, caller model.UserID, username, bio, avatarURL string) (*model.User, error)
	GetProfile(ctx context.Context, id model.UserID) (*model.User, bool)
	UpdateProfile(ctx context.Context, caller model.UserID, bio, avatarURL string) (*model.User, error)
	Follow(ctx context.Context, caller, target model.UserID) error
	Unfollow(ctx context.Context, caller, target model.UserID) error
	ListFollowers(ctx context.Context, id model.UserID) []model.UserID
	ListFollowing(ctx context.Context, id model.UserID) []model.UserID
	SearchUsers(ctx context.Context, query string) []*model.User
}

type userService struct {
	store *store.Store
}

func NewUserService(s *store.Store) UserService { return &userService{store: s} }

func (s *userService) Register(ctx context.Context, caller model.UserID, username, bio, avatarURL string) (*model.User, error) {
	if caller == model.Anonymous {
		return nil, errs.Unauthenticated("anonymous users cannot create profiles")
	}
	if !isValidUsername(username) {
		return nil, errs.InvalidInput("invalid username format")
	}
	return s.store.CreateUser(caller, username, bio, avatarURL)
}

func (s *userService) GetProfile(ctx context.Context, id model.UserID) (*model.User, bool) {
	return s.store.GetUser(id)
}

func (s *userService) UpdateProfile(ctx context.Context, caller model.UserID, bio, avatarURL string) (*model.User, error) {
	return s.store.UpdateUser(caller, bio, avatarURL)
}

func (s *userService) Follow(ctx context.Context, caller, target model.UserID) error {
	if caller == target {
		return errs.Conflict("cannot follow yourself")
	}
	return s.store.Follow(caller, target)
}

func (s *userService) Unfollow(ctx context.Context, caller, target model.UserID) error {
	return s.store.Unfollow(caller, target)
}

func (s *userService) ListFollowers(ctx context.Context, id model.UserID) []model.UserID {
	return s.store.Followers(id)
}

func (s *userService) ListFollowing(ctx context.Context, id model.UserID) []model.UserID {
	return s.store.Following(id)
}

func (s *userService) SearchUsers(ctx context.Context, query string) []*model.User {
	return s.store.SearchUsers(query)
}
