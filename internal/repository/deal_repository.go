package repository

import (
	"context"
	"time"

	"github.com/Cdhernandezr/abchroy-crm/internal/domain"
	"gorm.io/gorm"
)

type DealRepository struct {
	db *gorm.DB
}

func NewDealRepository(db *gorm.DB) *DealRepository {
	return &DealRepository{db: db}
}

func (r *DealRepository) Create(ctx context.Context, deal *domain.Deal) error {
	return r.db.WithContext(ctx).Create(deal).Error
}

func (r *DealRepository) GetByID(ctx context.Context, id string) (*domain.Deal, error) {
	var deal domain.Deal
	err := r.db.WithContext(ctx).First(&deal, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &deal, nil
}

func (r *DealRepository) Update(ctx context.Context, deal *domain.Deal) error {
	return r.db.WithContext(ctx).Save(deal).Error
}

// UpdateStage moves a deal into stage and writes its status and closing date
// in one statement. A nil closedAt clears the column. A deal without a
// pipeline is adopted by the pipeline of stage.
func (r *DealRepository) UpdateStage(ctx context.Context, id string, stage *domain.Stage, status string, closedAt *time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Deal{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"stage_id":    stage.ID,
			"pipeline_id": gorm.Expr("COALESCE(pipeline_id, ?)", stage.PipelineID),
			"status":      status,
			"closed_at":   closedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DealRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.Deal{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListByPipeline returns the deals of a pipeline, newest first
func (r *DealRepository) ListByPipeline(ctx context.Context, pipelineID string) ([]domain.Deal, error) {
	var deals []domain.Deal
	err := r.db.WithContext(ctx).
		Where("pipeline_id = ?", pipelineID).
		Order("created_at DESC").
		Find(&deals).Error
	return deals, err
}

// ListByStages returns the deals sitting in any of the given stages, newest
// first, whether or not their pipeline is set
func (r *DealRepository) ListByStages(ctx context.Context, stageIDs []string) ([]domain.Deal, error) {
	deals := []domain.Deal{}
	if len(stageIDs) == 0 {
		return deals, nil
	}
	err := r.db.WithContext(ctx).
		Where("stage_id IN ?", stageIDs).
		Order("created_at DESC").
		Find(&deals).Error
	return deals, err
}

// List returns every deal of every pipeline, newest first
func (r *DealRepository) List(ctx context.Context) ([]domain.Deal, error) {
	var deals []domain.Deal
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&deals).Error
	return deals, err
}
