package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"resume-builder/internal/model"
	"resume-builder/internal/store"
	"resume-builder/pkg/logger"
)

const DefaultKey = "resume-data"

// SnapshotRepo persists the whole resume under one key of a KV store.
type SnapshotRepo struct {
	kv  store.KV
	key string
	log logger.Logger
}

func NewSnapshotRepo(kv store.KV, key string, log logger.Logger) *SnapshotRepo {
	if key == "" {
		key = DefaultKey
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &SnapshotRepo{kv: kv, key: key, log: log}
}

// Load never fails: a missing, unreadable or malformed snapshot yields the
// built-in default resume.
func (r *SnapshotRepo) Load(ctx context.Context) model.Resume {
	b, ok, err := r.kv.Get(ctx, r.key)
	if err != nil {
		r.log.Warn("snapshot: read failed, using default", zap.String("key", r.key), zap.Error(err))
		return model.Default()
	}
	if !ok {
		return model.Default()
	}
	res, err := model.Decode(b)
	if err != nil {
		r.log.Warn("snapshot: stored data is invalid, using default", zap.String("key", r.key), zap.Error(err))
		return model.Default()
	}
	return res
}

func (r *SnapshotRepo) Save(ctx context.Context, res model.Resume) error {
	b, err := model.Encode(res)
	if err != nil {
		return err
	}
	if err := r.kv.Set(ctx, r.key, b); err != nil {
		return fmt.Errorf("snapshot: save: %w", err)
	}
	return nil
}
