package snapshot

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/d60-Lab/socialnet/internal/store"
	"github.com/d60-Lab/socialnet/pkg/logger"
)

// Snapshotter 周期性导出快照并写入后端
type Snapshotter struct {
	store    *store.Store
	backend  Backend
	interval time.Duration
}

func NewSnapshotter(s *store.Store, backend Backend, interval time.Duration) *Snapshotter {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Snapshotter{store: s, backend: backend, interval: interval}
}

// Start 启动后台落盘循环；返回停止函数，停止前会做最后一次保存。
func (s *Snapshotter) Start() func(context.Context) error {
	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				s.saveOnce(context.Background())
			}
		}
	}()
	return func(ctx context.Context) error {
		close(stop)
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
		return s.backend.Save(ctx, s.store.Snapshot())
	}
}

func (s *Snapshotter) saveOnce(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := s.backend.Save(ctx, s.store.Snapshot()); err != nil {
		logger.Error("snapshot save failed", zap.Error(err))
	}
}

// RestoreLatest 启动时加载最近一次快照；没有则保持空状态
func RestoreLatest(ctx context.Context, s *store.Store, backend Backend) error {
	snap, err := backend.Load(ctx)
	if err != nil {
		return err
	}
	if snap == nil {
		return nil
	}
	s.Restore(snap)
	return nil
}
