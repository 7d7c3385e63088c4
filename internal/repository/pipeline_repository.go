package repository

import (
	"context"

	"github.com/Cdhernandezr/abchroy-crm/internal/domain"
	"gorm.io/gorm"
)

type PipelineRepository struct {
	db *gorm.DB
}

func NewPipelineRepository(db *gorm.DB) *PipelineRepository {
	return &PipelineRepository{db: db}
}

func (r *PipelineRepository) Create(ctx context.Context, pipeline *domain.Pipeline) error {
	return r.db.WithContext(ctx).Create(pipeline).Error
}

func (r *PipelineRepository) GetByID(ctx context.Context, id string) (*domain.Pipeline, error) {
	var pipeline domain.Pipeline
	err := r.db.WithContext(ctx).First(&pipeline, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pipeline, nil
}

// List returns every pipeline, oldest first
func (r *PipelineRepository) List(ctx context.Context) ([]domain.Pipeline, error) {
	var pipelines []domain.Pipeline
	err := r.db.WithContext(ctx).Order("created_at ASC").Order("name ASC").Find(&pipelines).Error
	return pipelines, err
}
