package model

import "gorm.io/gorm"

// VacationDay a date on which tracking is suspended, table vacation_days
type VacationDay struct {
	VacationDayID string `gorm:"column:id;type:uuid;primaryKey"          json:"id"`
	Date          string `gorm:"type:varchar(10);not null;uniqueIndex" json:"date"`
	BaseModel
}

// TableName table name
func (VacationDay) TableName() string { return "vacation_days" }

// BeforeCreate assigns the uuid
func (v *VacationDay) BeforeCreate(_ *gorm.DB) error {
	newID(&v.VacationDayID)
	return nil
}
