package model

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the canonical calendar-day format used for every date column.
const DateLayout = "2006-01-02"

// BaseModel audit timestamps embedded by every table
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// VersionedModel adds a version counter for compare-and-replace updates
type VersionedModel struct {
	BaseModel
	Version int `gorm:"not null;default:1" json:"version"`
}

// newID fills an empty primary key. Postgres also has a column default, but
// SQLite does not, so ids are always assigned client-side.
func newID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

// All lists every persisted model, in dependency order
func All() []any {
	return []any{
		&Child{},
		&Activity{},
		&Behavior{},
		&VacationDay{},
		&Preferences{},
	}
}
