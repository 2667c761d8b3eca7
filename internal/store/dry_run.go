package store

import (
	"context"

	"go.uber.org/zap"
)

// DryRunStore 只记录操作日志，不写入任何数据
type DryRunStore struct {
	logger *zap.Logger
	ops    int
}

func NewDryRunStore(logger *zap.Logger) *DryRunStore {
	return &DryRunStore{logger: logger}
}

// Ops 已记录的操作数
func (d *DryRunStore) Ops() int {
	return d.ops
}

func (d *DryRunStore) Clear(ctx context.Context) error {
	d.ops++
	d.logger.Info("dry-run: FLUSHDB")
	return nil
}

func (d *DryRunStore) AddToSet(ctx context.Context, key, member string) error {
	d.ops++
	d.logger.Debug("dry-run: SADD", zap.String("key", key), zap.String("member", member))
	return nil
}

func (d *DryRunStore) WriteHash(ctx context.Context, key string, fields map[string]string) error {
	d.ops++
	d.logger.Debug("dry-run: HSET", zap.String("key", key), zap.Any("fields", fields))
	return nil
}

func (d *DryRunStore) AppendToList(ctx context.Context, key, member string) error {
	d.ops++
	d.logger.Debug("dry-run: RPUSH", zap.String("key", key), zap.String("member", member))
	return nil
}
