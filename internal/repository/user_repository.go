package repository

import (
	"context"

	"github.com/Cdhernandezr/abchroy-crm/internal/domain"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.UserProfile) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	var user domain.UserProfile
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns the public profile of every user
func (r *UserRepository) List(ctx context.Context) ([]domain.UserProfile, error) {
	var users []domain.UserProfile
	err := r.db.WithContext(ctx).Select("id", "name", "avatar").Find(&users).Error
	return users, err
}
