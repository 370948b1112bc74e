package store

import (
	"strings"

	"github.com/d60-Lab/socialnet/internal/errs"
	"github.com/d60-Lab/socialnet/internal/model"
)

// CreateUser 注册：每个身份仅一份资料；用户名大小写不敏感唯一（线性扫描）
func (s *Store) CreateUser(id model.UserID, username, bio, avatarURL string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; ok {
		return nil, errs.AlreadyExists("user already exists")
	}
	lower := strings.ToLower(username)
	for _, u := range s.users {
		if strings.ToLower(u.Username) == lower {
			return nil, errs.AlreadyExists("username already taken")
		}
	}

	user := model.NewUser(id, username, bio, avatarURL, s.clock.Now())
	s.users[id] = user
	return user.Clone(), nil
}

// GetUser 纯查询，无副作用
func (s *Store) GetUser(id model.UserID) (*model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, false
	}
	return u.Clone(), true
}

func (s *Store) UpdateUser(id model.UserID, bio, avatarURL string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, errs.NotFound("user not found")
	}
	u.Update(bio, avatarURL, s.clock.Now())
	return u.Clone(), nil
}

// Follow 建立关注边：双索引 + 双计数同步更新；已存在时幂等成功
func (s *Store) Follow(follower, followee model.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[follower]; !ok {
		return errs.NotFound("one or both users not found")
	}
	if _, ok := s.users[followee]; !ok {
		return errs.NotFound("one or both users not found")
	}

	for _, id := range s.userFollowing[follower] {
		if id == followee {
			return nil
		}
	}

	s.userFollowing[follower] = append(s.userFollowing[follower], followee)
	s.userFollowers[followee] = append(s.userFollowers[followee], follower)
	s.users[follower].FollowingCount++
	s.users[followee].FollowersCount++
	return nil
}

// Unfollow 边存在时移除并递减计数；不存在时静默成功
func (s *Store) Unfollow(follower, followee model.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	following := s.userFollowing[follower]
	pos := -1
	for i, id := range following {
		if id == followee {
			pos = i
			break
		}
	}
	if pos < 0 {
		return nil
	}

	s.userFollowing[follower] = append(following[:pos], following[pos+1:]...)
	followers := s.userFollowers[followee]
	for i, id := range followers {
		if id == follower {
			s.userFollowers[followee] = append(followers[:i], followers[i+1:]...)
			break
		}
	}
	if u, ok := s.users[follower]; ok {
		u.FollowingCount = saturatingDec(u.FollowingCount)
	}
	if u, ok := s.users[followee]; ok {
		u.FollowersCount = saturatingDec(u.FollowersCount)
	}
	return nil
}

func (s *Store) Followers(id model.UserID) []model.UserID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.UserID(nil), s.userFollowers[id]...)
}

func (s *Store) Following(id model.UserID) []model.UserID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.UserID(nil), s.userFollowing[id]...)
}

// SearchUsers 用户名或简介的大小写不敏感子串匹配，全表扫描
func (s *Store) SearchUsers(query string) []*model.User {
	q := strings.ToLower(query)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var res []*model.User
	for _, u := range s.users {
		if strings.Contains(strings.ToLower(u.Username), q) ||
			strings.Contains(strings.ToLower(u.Bio), q) {
			res = append(res, u.Clone())
		}
	}
	return res
}
