package model

import (
	"fmt"
	"time"
)

// Post 内容主体。likes_count 始终等于 len(Likes)。
type Post struct {
	ID             string              `json:"id"`
	Author         UserID              `json:"author"`
	Content        string              `json:"content"`
	MediaURL       *string             `json:"media_url,omitempty"`
	Likes          map[UserID]struct{} `json:"likes"`
	LikesCount     uint64              `json:"likes_count"`
	CommentsCount  uint64              `json:"comments_count"`
	SharesCount    uint64              `json:"shares_count"`
	IsShared       bool                `json:"is_shared"`
	OriginalPostID *string             `json:"original_post_id,omitempty"`
	ShareComment   *string             `json:"share_comment,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// PostID ID 为 作者+时间戳 的纯函数
func PostID(author UserID, ts time.Time) string {
	return fmt.Sprintf("%s_%d", author, ts.UnixNano())
}

// SharePostID 转发帖使用 share_ 前缀变体
func SharePostID(author UserID, ts time.Time) string {
	return fmt.Sprintf("share_%s_%d", author, ts.UnixNano())
}

func NewPost(author UserID, content string, mediaURL *string, now time.Time) *Post {
	return &Post{
		ID:        PostID(author, now),
		Author:    author,
		Content:   content,
		MediaURL:  mediaURL,
		Likes:     make(map[UserID]struct{}),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewSharePost 转发帖：引用原帖 ID，计数从零开始
func NewSharePost(author UserID, originalPostID string, comment *string, now time.Time) *Post {
	return &Post{
		ID:             SharePostID(author, now),
		Author:         author,
		Likes:          make(map[UserID]struct{}),
		IsShared:       true,
		OriginalPostID: &originalPostID,
		ShareComment:   comment,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// AddLike 去重插入；已点赞时返回 false 且计数不变
func (p *Post) AddLike(userID UserID) bool {
	if _, ok := p.Likes[userID]; ok {
		return false
	}
	p.Likes[userID] = struct{}{}
	p.LikesCount++
	return true
}

// RemoveLike 仅在已点赞时移除；计数饱和递减，不会下穿零
func (p *Post) RemoveLike(userID UserID) bool {
	if _, ok := p.Likes[userID]; !ok {
		return false
	}
	delete(p.Likes, userID)
	if p.LikesCount > 0 {
		p.LikesCount--
	}
	return true
}

func (p *Post) Clone() *Post {
	c := *p
	c.Likes = make(map[UserID]struct{}, len(p.Likes))
	for id := range p.Likes {
		c.Likes[id] = struct{}{}
	}
	if p.MediaURL != nil {
		v := *p.MediaURL
		c.MediaURL = &v
	}
	if p.OriginalPostID != nil {
		v := *p.OriginalPostID
		c.OriginalPostID = &v
	}
	if p.ShareComment != nil {
		v := *p.ShareComment
		c.ShareComment = &v
	}
	return &c
}
