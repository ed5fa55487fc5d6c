package dto

import "summer-success/tracker/internal/progress"

// ── Progress ──

// DailyProgressRequest progress query for one child
type DailyProgressRequest struct {
	ChildID string `form:"child_id" binding:"required"`
	Date    string `form:"date"     binding:"omitempty,isodate"`
}

// DailyProgressResponse computed progress. Celebrate is true only on the
// first observation of reward time for the child and day.
type DailyProgressResponse struct {
	progress.DailyProgress
	ChildName string `json:"child_name"`
	Celebrate bool   `json:"celebrate"`
}

// DashboardRequest dashboard query
type DashboardRequest struct {
	Date string `form:"date" binding:"omitempty,isodate"`
}

// DashboardResponse every child's progress on one day
type DashboardResponse struct {
	Date             string                  `json:"date"`
	Vacation         bool                    `json:"vacation"`
	Children         []DailyProgressResponse `json:"children"`
	RecentActivities []ActivityResponse      `json:"recent_activities"`
}

// ── Stats ──

// PeriodRequest weekly or monthly summary query
type PeriodRequest struct {
	ChildID string `form:"child_id" binding:"required"`
	View    string `form:"view"     binding:"omitempty,oneof=weekly monthly"`
	Date    string `form:"date"     binding:"omitempty,isodate"`
}

// PeriodResponse a child's summary over a week or month
type PeriodResponse struct {
	progress.PeriodSummary
	View      string `json:"view"`
	ChildName string `json:"child_name"`
}

// AnalyticsRequest analytics query
type AnalyticsRequest struct {
	Date string `form:"date" binding:"omitempty,isodate"`
}

// DayTotals minutes and counts for one day, all children combined
type DayTotals struct {
	Date      string `json:"date"`
	Education int    `json:"education"`
	Skill     int    `json:"skill"`
	Chores    int    `json:"chores"`
}

// ChildAnalytics per-child totals, streak and badges
type ChildAnalytics struct {
	ChildID          string                 `json:"child_id"`
	Name             string                 `json:"name"`
	EducationMinutes int                    `json:"education_minutes"`
	SkillMinutes     int                    `json:"skill_minutes"`
	CurrentStreak    int                    `json:"current_streak"`
	Achievements     []progress.Achievement `json:"achievements"`
}

// AnalyticsResponse the analytics view
type AnalyticsResponse struct {
	Date          string           `json:"date"`
	LastSevenDays []DayTotals      `json:"last_seven_days"`
	TypeCounts    map[string]int   `json:"type_counts"`
	Children      []ChildAnalytics `json:"children"`
}
