package store

import "github.com/d60-Lab/socialnet/internal/model"

// Snapshot 全量导出：所有主表、索引、账本与 admin 身份，作为一个整体持久化。
// 进程重启后的恢复通过 Restore 整体替换完成，不做合并。
type Snapshot struct {
	Users         map[model.UserID]*model.User    `json:"users"`
	Posts         map[string]*model.Post          `json:"posts"`
	Comments      map[string]*model.Comment       `json:"comments"`
	UserPosts     map[model.UserID][]string       `json:"user_posts"`
	UserFollowers map[model.UserID][]model.UserID `json:"user_followers"`
	UserFollowing map[model.UserID][]model.UserID `json:"user_following"`
	PostComments  map[string][]string             `json:"post_comments"`
	Transactions  []*model.Transaction            `json:"transactions"`
	Admin         model.UserID                    `json:"admin"`
}

// Snapshot 持读锁深拷贝全部状态
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := &Snapshot{
		Users:         make(map[model.UserID]*model.User, len(s.users)),
		Posts:         make(map[string]*model.Post, len(s.posts)),
		Comments:      make(map[string]*model.Comment, len(s.comments)),
		UserPosts:     cloneIndex(s.userPosts),
		UserFollowers: cloneIndex(s.userFollowers),
		UserFollowing: cloneIndex(s.userFollowing),
		PostComments:  cloneIndex(s.postComments),
		Transactions:  make([]*model.Transaction, 0, len(s.transactions)),
		Admin:         s.admin,
	}
	for id, u := range s.users {
		snap.Users[id] = u.Clone()
	}
	for id, p := range s.posts {
		snap.Posts[id] = p.Clone()
	}
	for id, c := range s.comments {
		snap.Comments[id] = c.Clone()
	}
	for _, tx := range s.transactions {
		c := *tx
		snap.Transactions = append(snap.Transactions, &c)
	}
	return snap
}

// Restore 持写锁整体赋值替换内存状态
func (s *Store) Restore(snap *Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = snap.Users
	s.posts = snap.Posts
	s.comments = snap.Comments
	s.userPosts = snap.UserPosts
	s.userFollowers = snap.UserFollowers
	s.userFollowing = snap.UserFollowing
	s.postComments = snap.PostComments
	s.transactions = snap.Transactions
	s.admin = snap.Admin

	// JSON 反序列化可能留下 nil map / nil likes，统一补齐
	if s.users == nil {
		s.users = make(map[model.UserID]*model.User)
	}
	if s.posts == nil {
		s.posts = make(map[string]*model.Post)
	}
	if s.comments == nil {
		s.comments = make(map[string]*model.Comment)
	}
	if s.userPosts == nil {
		s.userPosts = make(map[model.UserID][]string)
	}
	if s.userFollowers == nil {
		s.userFollowers = make(map[model.UserID][]model.UserID)
	}
	if s.userFollowing == nil {
		s.userFollowing = make(map[model.UserID][]model.UserID)
	}
	if s.postComments == nil {
		s.postComments = make(map[string][]string)
	}
	for _, p := range s.posts {
		if p.Likes == nil {
			p.Likes = make(map[model.UserID]struct{})
		}
	}
	for _, c := range s.comments {
		if c.Likes == nil {
			c.Likes = make(map[model.UserID]struct{})
		}
	}
}

func cloneIndex[K comparable, V any](m map[K][]V) map[K][]V {
	out := make(map[K][]V, len(m))
	for k, v := range m {
		out[k] = append([]V(nil), v...)
	}
	return out
}
