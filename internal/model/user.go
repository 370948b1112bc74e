package model

import "time"

// UserID 调用方身份（由执行环境分配，不可变）
type UserID string

// Anonymous 未认证调用方的哨兵值
const Anonymous UserID = "anonymous"

// User 用户资料（计数字段为冗余缓存，与索引保持一致）
type User struct {
	ID             UserID    `json:"id"`
	Username       string    `json:"username"`
	Bio            string    `json:"bio"`
	AvatarURL      string    `json:"avatar_url"`
	FollowersCount uint64    `json:"followers_count"`
	FollowingCount uint64    `json:"following_count"`
	PostsCount     uint64    `json:"posts_count"`
	Balance        uint64    `json:"balance"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func NewUser(id UserID, username, bio, avatarURL string, now time.Time) *User {
	return &User{
		ID:        id,
		Username:  username,
		Bio:       bio,
		AvatarURL: avatarURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Update 重写资料字段并刷新 updated_at
func (u *User) Update(bio, avatarURL string, now time.Time) {
	u.Bio = bio
	u.AvatarURL = avatarURL
	u.UpdatedAt = now
}

func (u *User) Clone() *User {
	c := *u
	return &c
}
