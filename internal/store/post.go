package store

import (
	"sort"
	"strings"
	"time"

	"github.com/d60-Lab/socialnet/internal/errs"
	"github.com/d60-Lab/socialnet/internal/model"
)

// CreatePost 插入帖子、追加作者帖子索引、递增 posts_count，三者同一次加锁内完成
func (s *Store) CreatePost(author model.UserID, content string, mediaURL *string) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[author]
	if !ok {
		return nil, errs.NotFound("user not found")
	}

	post := model.NewPost(author, content, mediaURL, s.clock.Now())
	s.posts[post.ID] = post
	s.userPosts[author] = append(s.userPosts[author], post.ID)
	user.PostsCount++
	return post.Clone(), nil
}

// SharePost 转发：新帖标记 is_shared，原帖 shares_count 递增
func (s *Store) SharePost(author model.UserID, originalPostID string, comment *string) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	original, ok := s.posts[originalPostID]
	if !ok {
		return nil, errs.NotFound("original post not found")
	}
	user, ok := s.users[author]
	if !ok {
		return nil, errs.NotFound("user not found")
	}

	share := model.NewSharePost(author, originalPostID, comment, s.clock.Now())
	s.posts[share.ID] = share
	s.userPosts[author] = append(s.userPosts[author], share.ID)
	original.SharesCount++
	user.PostsCount++
	return share.Clone(), nil
}

func (s *Store) LikePost(userID model.UserID, postID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[postID]
	if !ok {
		return errs.NotFound("post not found")
	}
	if !post.AddLike(userID) {
		return errs.Conflict("already liked this post")
	}
	return nil
}

func (s *Store) UnlikePost(userID model.UserID, postID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[postID]
	if !ok {
		return errs.NotFound("post not found")
	}
	if !post.RemoveLike(userID) {
		return errs.Conflict("haven't liked this post")
	}
	return nil
}

func (s *Store) GetPost(postID string) (*model.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.posts[postID]
	if !ok {
		return nil, false
	}
	return p.Clone(), true
}

// UserPosts 按插入顺序返回；索引里指向已删除帖子的 ID 静默跳过
func (s *Store) UserPosts(userID model.UserID) []*model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.userPosts[userID]
	res := make([]*model.Post, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.posts[id]; ok {
			res = append(res, p.Clone())
		}
	}
	return res
}

// Feed 自己 + 关注对象（仅一跳）的帖子合并，按 created_at 降序，再做 offset/limit 截窗
func (s *Store) Feed(userID model.UserID, limit, offset int) []*model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var feed []*model.Post
	collect := func(author model.UserID) {
		for _, id := range s.userPosts[author] {
			if p, ok := s.posts[id]; ok {
				feed = append(feed, p.Clone())
			}
		}
	}
	collect(userID)
	for _, followee := range s.userFollowing[userID] {
		collect(followee)
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].CreatedAt.After(feed[j].CreatedAt)
	})

	if offset >= len(feed) {
		return []*model.Post{}
	}
	feed = feed[offset:]
	if limit < len(feed) {
		feed = feed[:limit]
	}
	return feed
}

// SearchPosts 内容的大小写不敏感子串匹配，全表扫描
func (s *Store) SearchPosts(query string) []*model.Post {
	q := strings.ToLower(query)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var res []*model.Post
	for _, p := range s.posts {
		if strings.Contains(strings.ToLower(p.Content), q) {
			res = append(res, p.Clone())
		}
	}
	return res
}

// PostsSince 严格大于给定时刻的帖子，轮询式实时更新用
func (s *Store) PostsSince(ts time.Time) []*model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var res []*model.Post
	for _, p := range s.posts {
		if p.CreatedAt.After(ts) {
			res = append(res, p.Clone())
		}
	}
	return res
}

// RemovePost 删除帖子并同步作者索引与计数。
// 不级联：评论、post→comments 索引、转发帖的 original_post_id 均保持原样。
func (s *Store) RemovePost(postID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[postID]
	if !ok {
		return errs.NotFound("post not found")
	}
	delete(s.posts, postID)

	ids := s.userPosts[post.Author]
	for i, id := range ids {
		if id == postID {
			s.userPosts[post.Author] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if u, ok := s.users[post.Author]; ok {
		u.PostsCount = saturatingDec(u.PostsCount)
	}
	return nil
}
