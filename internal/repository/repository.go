package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository aggregates every table's data access
type Repository struct {
	Child       ChildRepository
	Activity    ActivityRepository
	Behavior    BehaviorRepository
	VacationDay VacationDayRepository
	Preferences PreferencesRepository

	db *gorm.DB
}

// NewRepository wires the gorm implementations
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Child:       NewChildRepo(db),
		Activity:    NewActivityRepo(db),
		Behavior:    NewBehaviorRepo(db),
		VacationDay: NewVacationDayRepo(db),
		Preferences: NewPreferencesRepo(db),
		db:          db,
	}
}

// RecordFilter narrows activity and behavior queries. Zero values mean
// "no constraint"; Limit <= 0 returns every row.
type RecordFilter struct {
	ChildID string
	Start   string // inclusive YYYY-MM-DD
	End     string // inclusive YYYY-MM-DD
	Type    string
	Offset  int
	Limit   int
}

func (f RecordFilter) apply(db *gorm.DB) *gorm.DB {
	if f.ChildID != "" {
		db = db.Where("child_id = ?", f.ChildID)
	}
	if f.Start != "" {
		db = db.Where("date >= ?", f.Start)
	}
	if f.End != "" {
		db = db.Where("date <= ?", f.End)
	}
	if f.Type != "" {
		db = db.Where("type = ?", f.Type)
	}
	return db
}

func (f RecordFilter) page(db *gorm.DB) *gorm.DB {
	if f.Limit > 0 {
		db = db.Offset(f.Offset).Limit(f.Limit)
	}
	return db
}

// BeginTx starts a transaction
func (r *Repository) BeginTx(ctx context.Context) (*gorm.DB, error) {
	tx := r.db.WithContext(ctx).Begin()
	return tx, tx.Error
}

// WithTx returns a Repository whose every table runs inside tx
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return NewRepository(tx)
}
