package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"summer-success/tracker/internal/model"
)

// VacationDayRepository vacation day data access
type VacationDayRepository interface {
	// List returns vacation days in [start, end]; empty bounds are open
	List(ctx context.Context, start, end string) ([]model.VacationDay, error)
	Exists(ctx context.Context, date string) (bool, error)
	// Add inserts date, doing nothing if it is already present. It reports
	// whether a row was inserted.
	Add(ctx context.Context, date string) (bool, error)
	// Remove deletes date and reports whether a row existed
	Remove(ctx context.Context, date string) (bool, error)
}

type vacationDayRepo struct {
	db *gorm.DB
}

// NewVacationDayRepo creates a VacationDayRepository
func NewVacationDayRepo(db *gorm.DB) VacationDayRepository {
	return &vacationDayRepo{db: db}
}

func (r *vacationDayRepo) List(ctx context.Context, start, end string) ([]model.VacationDay, error) {
	var days []model.VacationDay
	err := RecordFilter{Start: start, End: end}.
		apply(r.db.WithContext(ctx)).
		Order("date ASC").
		Find(&days).Error
	return days, err
}

func (r *vacationDayRepo) Exists(ctx context.Context, date string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.VacationDay{}).Where("date = ?", date).Count(&n).Error
	return n > 0, err
}

func (r *vacationDayRepo) Add(ctx context.Context, date string) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "date"}}, DoNothing: true}).
		Create(&model.VacationDay{Date: date})
	return result.RowsAffected > 0, result.Error
}

func (r *vacationDayRepo) Remove(ctx context.Context, date string) (bool, error) {
	result := r.db.WithContext(ctx).Where("date = ?", date).Delete(&model.VacationDay{})
	return result.RowsAffected > 0, result.Error
}
