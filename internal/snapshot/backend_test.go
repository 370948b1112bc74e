package snapshot

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/socialnet/internal/store"
)

func buildSnapshot(t *testing.T) *store.Snapshot {
	t.Helper()
	st := store.New("admin-user")
	_, err := st.CreateUser("u1", "alice", "bio", "")
	require.NoError(t, err)
	_, err = st.CreateUser("u2", "bob", "", "")
	require.NoError(t, err)
	require.NoError(t, st.Follow("u1", "u2"))
	post, err := st.CreatePost("u1", "hello", nil)
	require.NoError(t, err)
	require.NoError(t, st.LikePost("u2", post.ID))
	require.NoError(t, st.Credit("u1", 42))
	return st.Snapshot()
}

func verifyRestored(t *testing.T, snap *store.Snapshot) {
	t.Helper()
	st := store.New("other")
	st.Restore(snap)
	require.Equal(t, "admin-user", string(st.Admin()))
	u, ok := st.GetUser("u1")
	require.True(t, ok)
	require.Equal(t, "alice", u.Username)
	require.Equal(t, uint64(42), st.Balance("u1"))
	require.Len(t, st.UserPosts("u1"), 1)
	require.Equal(t, uint64(1), st.UserPosts("u1")[0].LikesCount)
}

func TestRedisBackend_SaveLoad(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	backend := NewRedisBackend(client, "")
	ctx := context.Background()

	// 无快照时 Load 返回 nil, nil
	snap, err := backend.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, snap)

	require.NoError(t, backend.Save(ctx, buildSnapshot(t)))

	snap, err = backend.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, snap)
	verifyRestored(t, snap)
}

func TestDatabaseBackend_SaveLoad(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	backend, err := NewDatabaseBackend(db)
	require.NoError(t, err)
	ctx := context.Background()

	snap, err := backend.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, snap)

	// 追加式归档：Load 取最新一条
	require.NoError(t, backend.Save(ctx, &store.Snapshot{Admin: "stale"}))
	require.NoError(t, backend.Save(ctx, buildSnapshot(t)))

	snap, err = backend.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, snap)
	verifyRestored(t, snap)
}

func TestRestoreLatest_EmptyBackendKeepsState(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	backend := NewRedisBackend(client, "")

	st := store.New("admin-user")
	_, err := st.CreateUser("u1", "alice", "", "")
	require.NoError(t, err)

	require.NoError(t, RestoreLatest(context.Background(), st, backend))

	_, ok := st.GetUser("u1")
	require.True(t, ok)
}
