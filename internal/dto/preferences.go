package dto

// ── Preferences ──

// UpdatePreferencesRequest partial preferences update
type UpdatePreferencesRequest struct {
	Theme               *string `json:"theme"                binding:"omitempty,oneof=light dark"`
	CelebrationsEnabled *bool   `json:"celebrations_enabled"`
}

// PreferencesResponse current preferences
type PreferencesResponse struct {
	Theme               string `json:"theme"`
	CelebrationsEnabled bool   `json:"celebrations_enabled"`
	UpdatedAt           string `json:"updated_at,omitempty"`
}

// ── Catalog ──

// CatalogResponse the fixed category and behavior lists
type CatalogResponse struct {
	Categories    map[string][]string `json:"categories"`
	BehaviorTypes []string            `json:"behavior_types"`
	Deduction     int                 `json:"behavior_deduction"`
	Goals         GoalsResponse       `json:"goals"`
}

// GoalsResponse the daily thresholds and base reward
type GoalsResponse struct {
	AcademicMinutes int `json:"academic_minutes"`
	SkillMinutes    int `json:"skill_minutes"`
	Chores          int `json:"chores"`
	RewardMinutes   int `json:"reward_minutes"`
}
