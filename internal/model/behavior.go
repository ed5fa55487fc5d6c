package model

import "gorm.io/gorm"

// BehaviorDeduction minutes removed from the daily reward per logged behavior
const BehaviorDeduction = 5

// Behavior a logged negative behavior, table behaviors
type Behavior struct {
	BehaviorID string `gorm:"column:id;type:uuid;primaryKey"                   json:"id"`
	ChildID    string `gorm:"type:uuid;not null;index:idx_behaviors_child_date" json:"child_id"`
	Date       string `gorm:"type:varchar(10);not null;index:idx_behaviors_child_date" json:"date"`
	Type       string `gorm:"type:varchar(100);not null"                       json:"type"`
	Deduction  *int   `gorm:""                                                 json:"deduction"`
	Notes      string `gorm:"type:text"                                        json:"notes,omitempty"`
	BaseModel
}

// TableName table name
func (Behavior) TableName() string { return "behaviors" }

// BeforeCreate assigns the uuid
func (b *Behavior) BeforeCreate(_ *gorm.DB) error {
	newID(&b.BehaviorID)
	return nil
}

// Minutes returns the deduction treating nil as zero
func (b *Behavior) Minutes() int {
	if b.Deduction == nil {
		return 0
	}
	return *b.Deduction
}
