package jobs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Cdhernandezr/abchroy-crm/internal/analytics"
	"github.com/Cdhernandezr/abchroy-crm/internal/domain"
	"github.com/Cdhernandezr/abchroy-crm/internal/service"
	"github.com/Cdhernandezr/abchroy-crm/internal/storage"
	"go.uber.org/zap"
)

// SnapshotJobName is the scheduler name of the analytics export
const SnapshotJobName = "analytics_snapshot"

// pruneSweepDays is how many expired days are deleted per pipeline and run,
// so a few skipped runs do not leave snapshots behind
const pruneSweepDays = 7

// SnapshotSource computes the analytics documents to export
type SnapshotSource interface {
	ListPipelineIDs(ctx context.Context) ([]string, error)
	GetSnapshot(ctx context.Context, pipelineID string) (*domain.AnalyticsSnapshot, error)
}

// SnapshotResult counts the outcome of one export run
type SnapshotResult struct {
	Written int
	Failed  int
}

// SnapshotJob writes the charts and KPIs of every pipeline to storage,
// one JSON document per pipeline and day
type SnapshotJob struct {
	source        SnapshotSource
	store         storage.Storage
	prefix        string
	timeout       time.Duration
	retentionDays int
	clock         analytics.Clock
	logger        *zap.Logger
}

// NewSnapshotJob creates the export job. Snapshots older than retentionDays
// are deleted after each write; retentionDays <= 0 keeps everything.
func NewSnapshotJob(source SnapshotSource, store storage.Storage, prefix string, timeout time.Duration, retentionDays int, clock analytics.Clock, logger *zap.Logger) *SnapshotJob {
	return &SnapshotJob{
		source:        source,
		store:         store,
		prefix:        prefix,
		timeout:       timeout,
		retentionDays: retentionDays,
		clock:         clock,
		logger:        logger,
	}
}

// Export writes one snapshot per pipeline. A failing pipeline is logged
// and counted, and the rest still run. Only failing to list pipelines or
// cancellation of ctx aborts the run.
func (j *SnapshotJob) Export(ctx context.Context) (SnapshotResult, error) {
	var result SnapshotResult

	ids, err := j.source.ListPipelineIDs(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to list pipelines: %w", err)
	}

	day := j.clock.Now()
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := j.exportPipeline(ctx, id, day); err != nil {
			result.Failed++
			j.logger.Error("analytics snapshot failed",
				zap.String("pipeline_id", id),
				zap.Error(err))
			continue
		}
		result.Written++
		j.prune(ctx, id, day)
	}
	return result, nil
}

// prune deletes the snapshots of a pipeline that just fell out of the
// retention window. Failures are logged and do not fail the export.
func (j *SnapshotJob) prune(ctx context.Context, pipelineID string, day time.Time) {
	if j.retentionDays <= 0 {
		return
	}
	cutoff := day.AddDate(0, 0, -j.retentionDays)
	for i := 0; i < pruneSweepDays; i++ {
		key := service.SnapshotKey(j.prefix, pipelineID, cutoff.AddDate(0, 0, -i))
		if err := j.store.Delete(ctx, key); err != nil {
			j.logger.Warn("failed to prune analytics snapshot",
				zap.String("key", key),
				zap.Error(err))
			return
		}
	}
}

func (j *SnapshotJob) exportPipeline(ctx context.Context, pipelineID string, day time.Time) error {
	snapshot, err := j.source.GetSnapshot(ctx, pipelineID)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	key := service.SnapshotKey(j.prefix, pipelineID, day)
	if _, err := j.store.Put(ctx, key, "application/json", bytes.NewReader(payload)); err != nil {
		return fmt.Errorf("failed to store %s: %w", key, err)
	}
	j.logger.Debug("analytics snapshot written", zap.String("key", key), zap.Int("bytes", len(payload)))
	return nil
}

// Run is the scheduler entry point
func (j *SnapshotJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	result, err := j.Export(ctx)
	if err != nil {
		j.logger.Error("analytics snapshot job aborted",
			zap.Error(err),
			zap.Int("written", result.Written),
			zap.Int("failed", result.Failed),
			zap.Duration("duration", time.Since(start)))
		return
	}

	j.logger.Info("analytics snapshot job completed",
		zap.Int("written", result.Written),
		zap.Int("failed", result.Failed),
		zap.Duration("duration", time.Since(start)))
}

// RegisterSnapshotJob schedules job on cronExpr
func RegisterSnapshotJob(scheduler *Scheduler, job *SnapshotJob, cronExpr string) error {
	return scheduler.AddJob(SnapshotJobName, cronExpr, job.Run)
}
