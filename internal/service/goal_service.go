package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Cdhernandezr/abchroy-crm/internal/domain"
	"github.com/Cdhernandezr/abchroy-crm/internal/mapper"
	"github.com/Cdhernandezr/abchroy-crm/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GoalService manages the yearly sales quotas
type GoalService struct {
	goalRepo *repository.GoalRepository
	logger   *zap.Logger
}

func NewGoalService(goalRepo *repository.GoalRepository, logger *zap.Logger) *GoalService {
	return &GoalService{goalRepo: goalRepo, logger: logger}
}

// GetGoal returns the quotas of a year. A year without quotas yields an
// empty month map rather than an error.
func (s *GoalService) GetGoal(ctx context.Context, year int) (*domain.GoalDTO, error) {
	goal, err := s.goalRepo.GetByYear(ctx, year)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			dto := mapper.ToGoalDTO(&domain.Goal{Year: year})
			return &dto, nil
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	dto := mapper.ToGoalDTO(goal)
	return &dto, nil
}

// UpsertGoal replaces the quotas of req.Year
func (s *GoalService) UpsertGoal(ctx context.Context, req *domain.UpsertGoalRequest) (*domain.GoalDTO, error) {
	for key, amount := range req.Months {
		if !validMonthKey(key) {
			return nil, fmt.Errorf("month %q: %w", key, ErrInvalidInput)
		}
		if amount < 0 {
			return nil, fmt.Errorf("month %q has a negative quota: %w", key, ErrInvalidInput)
		}
	}

	goal := &domain.Goal{Year: req.Year, Months: req.Months}
	if goal.Months == nil {
		goal.Months = map[string]float64{}
	}
	if err := s.goalRepo.Upsert(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to save goal: %w", err)
	}

	s.logger.Info("goal saved", zap.Int("year", req.Year), zap.Int("months", len(goal.Months)))
	return s.GetGoal(ctx, req.Year)
}

func validMonthKey(key string) bool {
	for m := 1; m <= 12; m++ {
		if key == domain.MonthKey(m) {
			return true
		}
	}
	return false
}
