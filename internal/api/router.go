package api

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/d60-Lab/socialnet/config"
	"github.com/d60-Lab/socialnet/internal/api/handler"
	"github.com/d60-Lab/socialnet/internal/api/middleware"
	"github.com/d60-Lab/socialnet/internal/model"
)

// NewRouter 组装中间件与路由
func NewRouter(cfg *config.Config, h *handler.Handler, admin model.UserID) *gin.Engine {
	gin.SetMode(modeOf(cfg.Server.Mode))
	registerValidators()

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		gin.Recovery(),
		gzip.Gzip(gzip.DefaultCompression),
		otelgin.Middleware("socialnet"),
		middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst),
		middleware.Auth(cfg.Auth.JWTSecret),
	)

	v1 := r.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			users.POST("", h.Register)
			users.GET("/search", h.SearchUsers)
			users.PUT("/me", h.UpdateProfile)
			users.GET("/:user_id", h.GetProfile)
			users.POST("/:user_id/follow", h.Follow)
			users.DELETE("/:user_id/follow", h.Unfollow)
			users.GET("/:user_id/followers", h.ListFollowers)
			users.GET("/:user_id/following", h.ListFollowing)
			users.GET("/:user_id/posts", h.GetUserPosts)
			users.GET("/:user_id/balance", h.GetBalance)
		}

		posts := v1.Group("/posts")
		{
			posts.POST("", h.CreatePost)
			posts.GET("/search", h.SearchPosts)
			posts.GET("/latest", h.GetLatestPosts)
			posts.GET("/:post_id", h.GetPost)
			posts.POST("/:post_id/share", h.SharePost)
			posts.POST("/:post_id/like", h.LikePost)
			posts.DELETE("/:post_id/like", h.UnlikePost)
			posts.POST("/:post_id/comments", h.CreateComment)
			posts.GET("/:post_id/comments", h.ListComments)
		}

		v1.GET("/feed", h.GetFeed)
		v1.POST("/comments/:comment_id/like", h.LikeComment)

		payments := v1.Group("/payments")
		{
			payments.POST("/tip", h.Tip)
			payments.GET("/transactions", h.ListTransactions)
		}

		// 管理操作的授权在边界完成，服务层默认调用方已通过检查
		adminGroup := v1.Group("/admin", middleware.RequireAdmin(admin))
		{
			adminGroup.DELETE("/posts/:post_id", h.RemovePost)
			adminGroup.POST("/users/:user_id/credit", h.Credit)
		}
	}

	return r
}

func modeOf(mode string) string {
	if mode == "debug" {
		return gin.DebugMode
	}
	return gin.ReleaseMode
}

// registerValidators 在 binding 层补充 username 格式校验（服务层仍是权威判定）
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" || len(s) > 20 {
			return false
		}
		for _, c := range s {
			ok := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_'
			if !ok {
				return false
			}
		}
		return true
	})
}
