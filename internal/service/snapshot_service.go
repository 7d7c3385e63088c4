package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/Cdhernandezr/abchroy-crm/internal/storage"
	"go.uber.org/zap"
)

// SnapshotDateLayout is the day format of snapshot keys and URLs
const SnapshotDateLayout = "2006-01-02"

// SnapshotKey is the storage key of a pipeline's exported snapshot for day
func SnapshotKey(prefix, pipelineID string, day time.Time) string {
	return path.Join(prefix, pipelineID, day.Format(SnapshotDateLayout)+".json")
}

// SnapshotService reads back the daily analytics snapshots written by the
// export job
type SnapshotService struct {
	store  storage.Storage
	prefix string
	logger *zap.Logger
}

func NewSnapshotService(store storage.Storage, prefix string, logger *zap.Logger) *SnapshotService {
	return &SnapshotService{
		store:  store,
		prefix: prefix,
		logger: logger,
	}
}

// Open returns the stored JSON document of a pipeline for day. The caller
// closes it.
func (s *SnapshotService) Open(ctx context.Context, pipelineID string, day time.Time) (io.ReadCloser, error) {
	key := SnapshotKey(s.prefix, pipelineID, day)
	rc, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("snapshot %s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return rc, nil
}
