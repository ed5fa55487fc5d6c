package model

import "gorm.io/gorm"

// Child a tracked child, table children
type Child struct {
	ChildID string `gorm:"column:id;type:uuid;primaryKey"          json:"id"`
	Name    string `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	BaseModel
}

// TableName table name
func (Child) TableName() string { return "children" }

// BeforeCreate assigns the uuid
func (c *Child) BeforeCreate(_ *gorm.DB) error {
	newID(&c.ChildID)
	return nil
}
