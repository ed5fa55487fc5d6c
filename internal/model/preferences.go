package model

// Theme dashboard color scheme
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Preferences presentation settings, table preferences (single row)
type Preferences struct {
	Singleton           bool  `gorm:"primaryKey"                                json:"-"`
	Theme               Theme `gorm:"type:varchar(10);not null;default:'light'" json:"theme"`
	CelebrationsEnabled bool  `gorm:"not null"                                  json:"celebrations_enabled"`
	BaseModel
}

// TableName table name
func (Preferences) TableName() string { return "preferences" }

// DefaultPreferences the row used when none has been stored yet
func DefaultPreferences() *Preferences {
	return &Preferences{Singleton: true, Theme: ThemeLight, CelebrationsEnabled: true}
}
