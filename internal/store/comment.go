package store

import (
	"github.com/d60-Lab/socialnet/internal/errs"
	"github.com/d60-Lab/socialnet/internal/model"
)

// CreateComment 目标帖子必须在创建时存在；帖子的 comments_count 同步递增
func (s *Store) CreateComment(author model.UserID, postID, content string) (*model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[postID]
	if !ok {
		return nil, errs.NotFound("post not found")
	}

	comment := model.NewComment(postID, author, content, s.clock.Now())
	s.comments[comment.ID] = comment
	s.postComments[postID] = append(s.postComments[postID], comment.ID)
	post.CommentsCount++
	return comment.Clone(), nil
}

// PostComments 按插入顺序返回；无评论时为空序列
func (s *Store) PostComments(postID string) []*model.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.postComments[postID]
	res := make([]*model.Comment, 0, len(ids))
	for _, id := range ids {
		if c, ok := s.comments[id]; ok {
			res = append(res, c.Clone())
		}
	}
	return res
}

func (s *Store) LikeComment(userID model.UserID, commentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, ok := s.comments[commentID]
	if !ok {
		return errs.NotFound("comment not found")
	}
	if !comment.AddLike(userID) {
		return errs.Conflict("already liked this comment")
	}
	return nil
}
