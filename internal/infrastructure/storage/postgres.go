package storage

import (
	"context"
	"errors"
	"fmt"

	"medifind/internal/domain/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostgresBackend stores keys as rows of the kv_entries table.
type PostgresBackend struct {
	db *gorm.DB
}

func NewPostgresBackend(db *gorm.DB) *PostgresBackend {
	return &PostgresBackend{db: db}
}

func (b *PostgresBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var row entity.KVEntry
	err := b.db.WithContext(ctx).Where("key = ?", key).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("postgres get: %w", err)
	}
	return []byte(row.Value), true, nil
}

func (b *PostgresBackend) Set(ctx context.Context, key string, value []byte) error {
	row := entity.KVEntry{Key: key, Value: string(value)}
	err := b.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("postgres set: %w", err)
	}
	return nil
}

func (b *PostgresBackend) Del(ctx context.Context, key string) error {
	if err := b.db.WithContext(ctx).Where("key = ?", key).Delete(&entity.KVEntry{}).Error; err != nil {
		return fmt.Errorf("postgres del: %w", err)
	}
	return nil
}
