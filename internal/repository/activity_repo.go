package repository

import (
	"context"

	"gorm.io/gorm"

	"summer-success/tracker/internal/model"
	pkgerrors "summer-success/tracker/pkg/errors"
)

// ActivityRepository activity data access
type ActivityRepository interface {
	Create(ctx context.Context, activity *model.Activity) error
	GetByID(ctx context.Context, id string) (*model.Activity, error)
	// Update writes the editable fields if the stored version still equals
	// activity.Version, then bumps it. A stale version yields
	// pkgerrors.ErrOptimisticLock.
	Update(ctx context.Context, activity *model.Activity) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter RecordFilter) ([]model.Activity, int64, error)
	// ListChronological returns every matching row, oldest first
	ListChronological(ctx context.Context, filter RecordFilter) ([]model.Activity, error)
}

type activityRepo struct {
	db *gorm.DB
}

// NewActivityRepo creates an ActivityRepository
func NewActivityRepo(db *gorm.DB) ActivityRepository {
	return &activityRepo{db: db}
}

func (r *activityRepo) Create(ctx context.Context, activity *model.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepo) GetByID(ctx context.Context, id string) (*model.Activity, error) {
	var activity model.Activity
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&activity).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepo) Update(ctx context.Context, activity *model.Activity) error {
	oldVersion := activity.Version
	result := r.db.WithContext(ctx).
		Model(activity).
		Where("id = ? AND version = ?", activity.ActivityID, oldVersion).
		Updates(map[string]interface{}{
			"category":    activity.Category,
			"description": activity.Description,
			"duration":    activity.Duration,
			"completed":   activity.Completed,
			"version":     oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	activity.Version = oldVersion + 1
	return nil
}

func (r *activityRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Activity{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *activityRepo) List(ctx context.Context, filter RecordFilter) ([]model.Activity, int64, error) {
	var activities []model.Activity
	var total int64

	db := filter.apply(r.db.WithContext(ctx).Model(&model.Activity{}))

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := filter.page(db).
		Order("date DESC").Order("created_at DESC").
		Find(&activities).Error; err != nil {
		return nil, 0, err
	}

	return activities, total, nil
}

func (r *activityRepo) ListChronological(ctx context.Context, filter RecordFilter) ([]model.Activity, error) {
	var activities []model.Activity
	err := filter.apply(r.db.WithContext(ctx)).
		Order("date ASC").Order("created_at ASC").
		Find(&activities).Error
	return activities, err
}
