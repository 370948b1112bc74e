package model

import (
	"fmt"
	"time"
)

// Comment 帖子评论。post_id 仅为回引用，不代表所有权。
type Comment struct {
	ID         string              `json:"id"`
	PostID     string              `json:"post_id"`
	Author     UserID              `json:"author"`
	Content    string              `json:"content"`
	Likes      map[UserID]struct{} `json:"likes"`
	LikesCount uint64              `json:"likes_count"`
	CreatedAt  time.Time           `json:"created_at"`
}

func CommentID(postID string, author UserID, ts time.Time) string {
	return fmt.Sprintf("comment_%s_%s_%d", postID, author, ts.UnixNano())
}

func NewComment(postID string, author UserID, content string, now time.Time) *Comment {
	return &Comment{
		ID:        CommentID(postID, author, now),
		PostID:    postID,
		Author:    author,
		Content:   content,
		Likes:     make(map[UserID]struct{}),
		CreatedAt: now,
	}
}

func (c *Comment) AddLike(userID UserID) bool {
	if _, ok := c.Likes[userID]; ok {
		return false
	}
	c.Likes[userID] = struct{}{}
	c.LikesCount++
	return true
}

func (c *Comment) RemoveLike(userID UserID) bool {
	if _, ok := c.Likes[userID]; !ok {
		return false
	}
	delete(c.Likes, userID)
	if c.LikesCount > 0 {
		c.LikesCount--
	}
	return true
}

func (c *Comment) Clone() *Comment {
	cp := *c
	cp.Likes = make(map[UserID]struct{}, len(c.Likes))
	for id := range c.Likes {
		cp.Likes[id] = struct{}{}
	}
	return &cp
}
