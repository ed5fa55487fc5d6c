package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"summer-success/tracker/internal/model"
)

// PreferencesRepository preferences singleton access
type PreferencesRepository interface {
	// Get returns gorm.ErrRecordNotFound until the row is first saved
	Get(ctx context.Context) (*model.Preferences, error)
	Save(ctx context.Context, prefs *model.Preferences) error
}

type preferencesRepo struct {
	db *gorm.DB
}

// NewPreferencesRepo creates a PreferencesRepository
func NewPreferencesRepo(db *gorm.DB) PreferencesRepository {
	return &preferencesRepo{db: db}
}

func (r *preferencesRepo) Get(ctx context.Context) (*model.Preferences, error) {
	var prefs model.Preferences
	err := r.db.WithContext(ctx).Where("singleton = ?", true).First(&prefs).Error
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

func (r *preferencesRepo) Save(ctx context.Context, prefs *model.Preferences) error {
	prefs.Singleton = true
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "singleton"}},
			DoUpdates: clause.AssignmentColumns([]string{"theme", "celebrations_enabled", "updated_at"}),
		}).
		Create(prefs).Error
}
