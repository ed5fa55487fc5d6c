package repository

import (
	"context"

	"gorm.io/gorm"

	"summer-success/tracker/internal/model"
)

// ChildRepository child data access
type ChildRepository interface {
	Create(ctx context.Context, child *model.Child) error
	GetByID(ctx context.Context, id string) (*model.Child, error)
	GetByName(ctx context.Context, name string) (*model.Child, error)
	List(ctx context.Context) ([]model.Child, error)
}

type childRepo struct {
	db *gorm.DB
}

// NewChildRepo creates a ChildRepository
func NewChildRepo(db *gorm.DB) ChildRepository {
	return &childRepo{db: db}
}

func (r *childRepo) Create(ctx context.Context, child *model.Child) error {
	return r.db.WithContext(ctx).Create(child).Error
}

func (r *childRepo) GetByID(ctx context.Context, id string) (*model.Child, error) {
	var child model.Child
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&child).Error
	if err != nil {
		return nil, err
	}
	return &child, nil
}

func (r *childRepo) GetByName(ctx context.Context, name string) (*model.Child, error) {
	var child model.Child
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&child).Error
	if err != nil {
		return nil, err
	}
	return &child, nil
}

func (r *childRepo) List(ctx context.Context) ([]model.Child, error) {
	var children []model.Child
	err := r.db.WithContext(ctx).Order("name ASC").Find(&children).Error
	return children, err
}
