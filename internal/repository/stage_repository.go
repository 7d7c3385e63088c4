package repository

import (
	"context"

	"github.com/Cdhernandezr/abchroy-crm/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderColumn sorts by the stage position; "order" is a reserved word and
// must go through the dialect's quoting
var orderColumn = clause.OrderByColumn{Column: clause.Column{Name: "order"}}

type StageRepository struct {
	db *gorm.DB
}

func NewStageRepository(db *gorm.DB) *StageRepository {
	return &StageRepository{db: db}
}

func (r *StageRepository) Create(ctx context.Context, stage *domain.Stage) error {
	return r.db.WithContext(ctx).Create(stage).Error
}

func (r *StageRepository) GetByID(ctx context.Context, id string) (*domain.Stage, error) {
	var stage domain.Stage
	err := r.db.WithContext(ctx).First(&stage, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &stage, nil
}

// ListByPipeline returns the stages of a pipeline in board order
func (r *StageRepository) ListByPipeline(ctx context.Context, pipelineID string) ([]domain.Stage, error) {
	var stages []domain.Stage
	err := r.db.WithContext(ctx).
		Where("pipeline_id = ?", pipelineID).
		Order(orderColumn).
		Find(&stages).Error
	return stages, err
}

// List returns the stages of every pipeline
func (r *StageRepository) List(ctx context.Context) ([]domain.Stage, error) {
	var stages []domain.Stage
	err := r.db.WithContext(ctx).
		Order("pipeline_id ASC").
		Order(orderColumn).
		Find(&stages).Error
	return stages, err
}
