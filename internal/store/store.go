package store

import (
	"sync"
	"time"

	"github.com/d60-Lab/socialnet/internal/model"
)

// Clock 抽象取时，便于测试注入固定时间
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Store 唯一的权威状态：主表 + 二级索引。
// 所有变更操作全程持有写锁，保证每个操作对其他操作原子；
// 任何实体都不会以活引用形式离开本包（读写均做拷贝）。
type Store struct {
	mu    sync.RWMutex
	clock Clock

	users    map[model.UserID]*model.User
	posts    map[string]*model.Post
	comments map[string]*model.Comment

	userPosts     map[model.UserID][]string
	userFollowers map[model.UserID][]model.UserID
	userFollowing map[model.UserID][]model.UserID
	postComments  map[string][]string

	transactions []*model.Transaction

	admin model.UserID
}

type Option func(*Store)

// WithClock 替换时钟（测试用）
func WithClock(c Clock) Option {
	return func(s *Store) { s.clock = c }
}

// New 创建空 Store。admin 在初始化时设定，之后不可变。
func New(admin model.UserID, opts ...Option) *Store {
	s := &Store{
		clock:         realClock{},
		users:         make(map[model.UserID]*model.User),
		posts:         make(map[string]*model.Post),
		comments:      make(map[string]*model.Comment),
		userPosts:     make(map[model.UserID][]string),
		userFollowers: make(map[model.UserID][]model.UserID),
		userFollowing: make(map[model.UserID][]model.UserID),
		postComments:  make(map[string][]string),
		admin:         admin,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Admin 返回初始化时配置的特权身份
func (s *Store) Admin() model.UserID {
	return s.admin
}

// saturatingDec 饱和递减：到零为止，不做有符号运算
func saturatingDec(v uint64) uint64 {
	if v == 0 {
		return 0
	}
	return v - 1
}
