package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/d60-Lab/socialnet/internal/store"
)

// snapshotRecord 快照归档行；Load 取最新一条
type snapshotRecord struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Payload   []byte    `gorm:"type:bytes;not null"`
	CreatedAt time.Time `gorm:"index"`
}

func (snapshotRecord) TableName() string { return "snapshots" }

// DatabaseBackend archives snapshots into a relational table via gorm.
// Every save appends a row, so older snapshots stay available for inspection.
type DatabaseBackend struct {
	db *gorm.DB
}

func NewDatabaseBackend(db *gorm.DB) (*DatabaseBackend, error) {
	if err := db.AutoMigrate(&snapshotRecord{}); err != nil {
		return nil, fmt.Errorf("migrate snapshots table: %w", err)
	}
	return &DatabaseBackend{db: db}, nil
}

func (b *DatabaseBackend) Save(ctx context.Context, snap *store.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	rec := &snapshotRecord{Payload: payload}
	if err := b.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (b *DatabaseBackend) Load(ctx context.Context) (*store.Snapshot, error) {
	var rec snapshotRecord
	err := b.db.WithContext(ctx).Order("id DESC").First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	var snap store.Snapshot
	if err := json.Unmarshal(rec.Payload, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return &snap, nil
}
