package repository

import (
	"context"

	"github.com/Cdhernandezr/abchroy-crm/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GoalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

// ListByYear returns the goals of a year. There is at most one per year,
// but callers receive a slice so an unset year is simply empty.
func (r *GoalRepository) ListByYear(ctx context.Context, year int) ([]domain.Goal, error) {
	var goals []domain.Goal
	err := r.db.WithContext(ctx).Where("year = ?", year).Find(&goals).Error
	return goals, err
}

// GetByYear returns the goal of a year or gorm.ErrRecordNotFound
func (r *GoalRepository) GetByYear(ctx context.Context, year int) (*domain.Goal, error) {
	var goal domain.Goal
	err := r.db.WithContext(ctx).First(&goal, "year = ?", year).Error
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// Upsert inserts the goal of a year or replaces the months of the existing one
func (r *GoalRepository) Upsert(ctx context.Context, goal *domain.Goal) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "year"}},
		DoUpdates: clause.AssignmentColumns([]string{"months"}),
	}).Create(goal).Error
}
