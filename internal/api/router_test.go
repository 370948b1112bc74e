package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/socialnet/config"
	"github.com/d60-Lab/socialnet/internal/api/handler"
	"github.com/d60-Lab/socialnet/internal/service"
	"github.com/d60-Lab/socialnet/internal/store"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T) (http.Handler, *store.Store) {
	t.Helper()
	cfg := &config.Config{}
	cfg.Server.Mode = "release"
	cfg.Auth.JWTSecret = testSecret
	cfg.RateLimit.RPS = 10000
	cfg.RateLimit.Burst = 10000

	st := store.New("admin-user")
	h := handler.New(
		service.NewUserService(st),
		service.NewPostService(st),
		service.NewCommentService(st),
		service.NewPaymentService(st),
	)
	return NewRouter(cfg, h, st.Admin()), st
}

func tokenFor(t *testing.T, sub string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": sub,
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

func doJSON(t *testing.T, r http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegister_AnonymousRejected(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/users", "", `{"username":"alice"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegister_InvalidTokenRejected(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/users", "garbage", `{"username":"alice"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegister_UsernameBindingValidation(t *testing.T) {
	r, _ := newTestRouter(t)
	token := tokenFor(t, "u1")

	w := doJSON(t, r, http.MethodPost, "/api/v1/users", token, `{"username":"has space"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterAndFetchProfile(t *testing.T) {
	r, _ := newTestRouter(t)
	token := tokenFor(t, "u1")

	w := doJSON(t, r, http.MethodPost, "/api/v1/users", token, `{"username":"alice","bio":"hi"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// 重复注册：409
	w = doJSON(t, r, http.MethodPost, "/api/v1/users", token, `{"username":"alice2"}`)
	require.Equal(t, http.StatusConflict, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/u1", nil)
	// gzip 中间件默认压缩响应，测试中跳过
	req.Header.Set("Accept-Encoding", "identity")
	wr := httptest.NewRecorder()
	r.ServeHTTP(wr, req)
	require.Equal(t, http.StatusOK, wr.Code)

	var resp struct {
		Data struct {
			Username string `json:"username"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(wr.Body.Bytes(), &resp))
	require.Equal(t, "alice", resp.Data.Username)
}

func TestRemovePost_AdminGate(t *testing.T) {
	r, st := newTestRouter(t)
	userToken := tokenFor(t, "u1")
	adminToken := tokenFor(t, "admin-user")

	w := doJSON(t, r, http.MethodPost, "/api/v1/users", userToken, `{"username":"alice"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/v1/posts", userToken, `{"content":"hello"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	posts := st.UserPosts("u1")
	require.Len(t, posts, 1)
	postID := posts[0].ID

	// 非管理员：403，状态不变
	w = doJSON(t, r, http.MethodDelete, "/api/v1/admin/posts/"+postID, userToken, "")
	require.Equal(t, http.StatusForbidden, w.Code)
	_, ok := st.GetPost(postID)
	require.True(t, ok)
	u, _ := st.GetUser("u1")
	require.Equal(t, uint64(1), u.PostsCount)

	// 管理员：删除并同步计数
	w = doJSON(t, r, http.MethodDelete, "/api/v1/admin/posts/"+postID, adminToken, "")
	require.Equal(t, http.StatusOK, w.Code)
	_, ok = st.GetPost(postID)
	require.False(t, ok)
	u, _ = st.GetUser("u1")
	require.Equal(t, uint64(0), u.PostsCount)
}

func TestTipFlow(t *testing.T) {
	r, st := newTestRouter(t)
	aliceToken := tokenFor(t, "u1")
	bobToken := tokenFor(t, "u2")

	w := doJSON(t, r, http.MethodPost, "/api/v1/users", aliceToken, `{"username":"alice"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/v1/users", bobToken, `{"username":"bob"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	require.NoError(t, st.Credit("u1", 100))

	w = doJSON(t, r, http.MethodPost, "/api/v1/payments/tip", aliceToken, `{"recipient":"u2","amount":30}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, uint64(70), st.Balance("u1"))
	require.Equal(t, uint64(30), st.Balance("u2"))

	// 余额不足：402
	w = doJSON(t, r, http.MethodPost, "/api/v1/payments/tip", aliceToken, `{"recipient":"u2","amount":1000}`)
	require.Equal(t, http.StatusPaymentRequired, w.Code)
}
