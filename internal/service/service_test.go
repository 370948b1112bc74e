package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/socialnet/internal/errs"
	"github.com/d60-Lab/socialnet/internal/model"
	"github.com/d60-Lab/socialnet/internal/store"
)

func newServices(t *testing.T) (UserService, PostService, CommentService, PaymentService, *store.Store) {
	t.Helper()
	st := store.New("admin-user")
	return NewUserService(st), NewPostService(st), NewCommentService(st), NewPaymentService(st), st
}

func TestRegister_Validation(t *testing.T) {
	userSvc, _, _, _, _ := newServices(t)
	ctx := context.Background()

	_, err := userSvc.Register(ctx, model.Anonymous, "alice", "", "")
	require.Equal(t, errs.KindUnauthenticated, errs.KindOf(err))

	for _, bad := range []string{"", "has space", "too_long_username_over20", "emoji😀", "semi;colon"} {
		_, err := userSvc.Register(ctx, "u1", bad, "", "")
		require.Equal(t, errs.KindInvalidInput, errs.KindOf(err), "username %q", bad)
	}

	u, err := userSvc.Register(ctx, "u1", "alice_01", "bio", "http://a/b.png")
	require.NoError(t, err)
	require.Equal(t, model.UserID("u1"), u.ID)
	require.Equal(t, uint64(0), u.FollowersCount)
	require.Equal(t, uint64(0), u.Balance)
}

func TestUpdateProfile_RequiresExistingProfile(t *testing.T) {
	userSvc, _, _, _, _ := newServices(t)
	ctx := context.Background()

	_, err := userSvc.UpdateProfile(ctx, "ghost", "bio", "")
	require.Equal(t, errs.KindNotFound, errs.KindOf(err))

	_, err = userSvc.Register(ctx, "u1", "alice", "old", "")
	require.NoError(t, err)
	u, err := userSvc.UpdateProfile(ctx, "u1", "new bio", "http://a.png")
	require.NoError(t, err)
	require.Equal(t, "new bio", u.Bio)
}

func TestFollow_SelfFollowForbidden(t *testing.T) {
	userSvc, _, _, _, _ := newServices(t)
	ctx := context.Background()
	_, err := userSvc.Register(ctx, "u1", "alice", "", "")
	require.NoError(t, err)

	err = userSvc.Follow(ctx, "u1", "u1")
	require.Equal(t, errs.KindConflict, errs.KindOf(err))
}

func TestCreatePost_Validation(t *testing.T) {
	userSvc, postSvc, _, _, _ := newServices(t)
	ctx := context.Background()
	_, err := userSvc.Register(ctx, "u1", "alice", "", "")
	require.NoError(t, err)

	_, err = postSvc.CreatePost(ctx, model.Anonymous, "hi", nil)
	require.Equal(t, errs.KindUnauthenticated, errs.KindOf(err))

	// 空白内容且无媒体：拒绝
	_, err = postSvc.CreatePost(ctx, "u1", "   \t\n", nil)
	require.Equal(t, errs.KindInvalidInput, errs.KindOf(err))

	// 空白内容但有媒体：允许
	media := "http://img/1.png"
	p, err := postSvc.CreatePost(ctx, "u1", "", &media)
	require.NoError(t, err)
	require.NotNil(t, p.MediaURL)

	_, err = postSvc.CreatePost(ctx, "u1", strings.Repeat("x", 281), nil)
	require.Equal(t, errs.KindInvalidInput, errs.KindOf(err))

	// 内容两端空白被清理
	p, err = postSvc.CreatePost(ctx, "u1", "  hello  ", nil)
	require.NoError(t, err)
	require.Equal(t, "hello", p.Content)
}

func TestSharePost_RejectsAnonymous(t *testing.T) {
	userSvc, postSvc, _, _, _ := newServices(t)
	ctx := context.Background()
	_, err := userSvc.Register(ctx, "u1", "alice", "", "")
	require.NoError(t, err)
	p, err := postSvc.CreatePost(ctx, "u1", "original", nil)
	require.NoError(t, err)

	_, err = postSvc.SharePost(ctx, model.Anonymous, p.ID, nil)
	require.Equal(t, errs.KindUnauthenticated, errs.KindOf(err))
}

func TestCreateComment_Validation(t *testing.T) {
	userSvc, postSvc, commentSvc, _, _ := newServices(t)
	ctx := context.Background()
	_, err := userSvc.Register(ctx, "u1", "alice", "", "")
	require.NoError(t, err)
	p, err := postSvc.CreatePost(ctx, "u1", "post", nil)
	require.NoError(t, err)

	_, err = commentSvc.CreateComment(ctx, model.Anonymous, p.ID, "hi")
	require.Equal(t, errs.KindUnauthenticated, errs.KindOf(err))

	_, err = commentSvc.CreateComment(ctx, "u1", p.ID, "  ")
	require.Equal(t, errs.KindInvalidInput, errs.KindOf(err))

	_, err = commentSvc.CreateComment(ctx, "u1", p.ID, strings.Repeat("y", 281))
	require.Equal(t, errs.KindInvalidInput, errs.KindOf(err))

	c, err := commentSvc.CreateComment(ctx, "u1", p.ID, " hello ")
	require.NoError(t, err)
	require.Equal(t, "hello", c.Content)
}

func TestTip_Validation(t *testing.T) {
	userSvc, _, _, paySvc, st := newServices(t)
	ctx := context.Background()
	_, err := userSvc.Register(ctx, "u1", "alice", "", "")
	require.NoError(t, err)
	_, err = userSvc.Register(ctx, "u2", "bob", "", "")
	require.NoError(t, err)
	require.NoError(t, st.Credit("u1", 10))

	require.Equal(t, errs.KindUnauthenticated, errs.KindOf(paySvc.Tip(ctx, model.Anonymous, "u2", 5)))
	require.Equal(t, errs.KindConflict, errs.KindOf(paySvc.Tip(ctx, "u1", "u2", 0)))
	require.Equal(t, errs.KindConflict, errs.KindOf(paySvc.Tip(ctx, "u1", "u1", 5)))

	// 失败路径不改变余额
	require.Equal(t, uint64(10), paySvc.GetBalance(ctx, "u1"))

	require.NoError(t, paySvc.Tip(ctx, "u1", "u2", 5))
	require.Equal(t, uint64(5), paySvc.GetBalance(ctx, "u1"))
	require.Equal(t, uint64(5), paySvc.GetBalance(ctx, "u2"))
}
