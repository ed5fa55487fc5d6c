package repository

import (
	"context"

	"gorm.io/gorm"

	"summer-success/tracker/internal/model"
)

// BehaviorRepository behavior data access
type BehaviorRepository interface {
	Create(ctx context.Context, behavior *model.Behavior) error
	GetByID(ctx context.Context, id string) (*model.Behavior, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter RecordFilter) ([]model.Behavior, error)
}

type behaviorRepo struct {
	db *gorm.DB
}

// NewBehaviorRepo creates a BehaviorRepository
func NewBehaviorRepo(db *gorm.DB) BehaviorRepository {
	return &behaviorRepo{db: db}
}

func (r *behaviorRepo) Create(ctx context.Context, behavior *model.Behavior) error {
	return r.db.WithContext(ctx).Create(behavior).Error
}

func (r *behaviorRepo) GetByID(ctx context.Context, id string) (*model.Behavior, error) {
	var behavior model.Behavior
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&behavior).Error
	if err != nil {
		return nil, err
	}
	return &behavior, nil
}

func (r *behaviorRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Behavior{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *behaviorRepo) List(ctx context.Context, filter RecordFilter) ([]model.Behavior, error) {
	var behaviors []model.Behavior
	err := filter.page(filter.apply(r.db.WithContext(ctx))).
		Order("date DESC").Order("created_at DESC").
		Find(&behaviors).Error
	return behaviors, err
}
