package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/socialnet/config"
	"github.com/d60-Lab/socialnet/internal/api"
	"github.com/d60-Lab/socialnet/internal/api/handler"
	"github.com/d60-Lab/socialnet/internal/model"
	"github.com/d60-Lab/socialnet/internal/service"
	"github.com/d60-Lab/socialnet/internal/snapshot"
	"github.com/d60-Lab/socialnet/internal/store"
	"github.com/d60-Lab/socialnet/pkg/database"
	"github.com/d60-Lab/socialnet/pkg/logger"
	"github.com/d60-Lab/socialnet/pkg/tracing"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func main() {
	cfg := must(config.Load())
	if err := logger.Init(cfg.Log.Level, cfg.Sentry.DSN); err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.Tracing.Enabled {
		shutdown := must(tracing.Init(ctx, "socialnet", cfg.Tracing.Endpoint))
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdown(shutdownCtx)
		}()
	}

	st := store.New(model.UserID(cfg.Admin.ID))

	backend := must(newSnapshotBackend(cfg))
	var stopSnapshotter func(context.Context) error
	if backend != nil {
		if err := snapshot.RestoreLatest(ctx, st, backend); err != nil {
			logger.Fatal("restore snapshot", zap.Error(err))
		}
		stopSnapshotter = snapshot.NewSnapshotter(st, backend, cfg.Snapshot.Interval).Start()
	}

	h := handler.New(
		service.NewUserService(st),
		service.NewPostService(st),
		service.NewCommentService(st),
		service.NewPaymentService(st),
	)
	router := api.NewRouter(cfg, h, st.Admin())

	srv := &http.Server{Addr: cfg.Server.Addr, Handler: router}
	go func() {
		logger.Info("server starting", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	if stopSnapshotter != nil {
		if err := stopSnapshotter(shutdownCtx); err != nil {
			logger.Error("final snapshot", zap.Error(err))
		}
	}
}

// newSnapshotBackend 按配置选择快照后端；none 时返回 nil
func newSnapshotBackend(cfg *config.Config) (snapshot.Backend, error) {
	switch cfg.Snapshot.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return snapshot.NewRedisBackend(client, cfg.Snapshot.RedisKey), nil
	case "database":
		db, err := database.InitDB(cfg)
		if err != nil {
			return nil, err
		}
		return snapshot.NewDatabaseBackend(db)
	case "none", "":
		return nil, nil
	default:
		return nil, errors.New("unsupported snapshot backend: " + cfg.Snapshot.Backend)
	}
}
