package model

import "gorm.io/gorm"

// ActivityType classifies a logged activity
type ActivityType string

const (
	ActivityChore     ActivityType = "chore"
	ActivityEducation ActivityType = "education"
	ActivitySkill     ActivityType = "skill"
)

// Valid reports whether t is one of the three known types
func (t ActivityType) Valid() bool {
	switch t {
	case ActivityChore, ActivityEducation, ActivitySkill:
		return true
	}
	return false
}

// Timed reports whether the type needs a duration
func (t ActivityType) Timed() bool {
	return t == ActivityEducation || t == ActivitySkill
}

// Activity a chore, education or skill entry, table activities
type Activity struct {
	ActivityID  string       `gorm:"column:id;type:uuid;primaryKey"              json:"id"`
	ChildID     string       `gorm:"type:uuid;not null;index:idx_activities_child_date" json:"child_id"`
	Date        string       `gorm:"type:varchar(10);not null;index:idx_activities_child_date" json:"date"`
	Type        ActivityType `gorm:"type:varchar(20);not null"                   json:"type"`
	Category    string       `gorm:"type:varchar(100);not null"                  json:"category"`
	Description string       `gorm:"type:text;not null"                          json:"description"`
	Duration    *int         `gorm:""                                            json:"duration,omitempty"` // minutes, nil for chores
	Completed   bool         `gorm:"not null"                                    json:"completed"`
	VersionedModel
}

// TableName table name
func (Activity) TableName() string { return "activities" }

// BeforeCreate assigns the uuid and initial version
func (a *Activity) BeforeCreate(_ *gorm.DB) error {
	newID(&a.ActivityID)
	if a.Version == 0 {
		a.Version = 1
	}
	return nil
}

// Minutes returns the duration treating nil as zero
func (a *Activity) Minutes() int {
	if a.Duration == nil {
		return 0
	}
	return *a.Duration
}
