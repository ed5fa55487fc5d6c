package progress

import (
	"fmt"
	"math"
	"time"

	"summer-success/tracker/internal/model"
)

// View the aggregation window of a period summary
type View string

const (
	ViewWeekly  View = "weekly"
	ViewMonthly View = "monthly"
)

// ParseDate parses an ISO calendar day. Dates carry no time zone; they are
// parsed in UTC purely for calendar arithmetic.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", date, err)
	}
	return t, nil
}

// FormatDate formats t's calendar day
func FormatDate(t time.Time) string {
	return t.Format(model.DateLayout)
}

// Today returns the current calendar day in loc
func Today(now time.Time, loc *time.Location) string {
	return FormatDate(now.In(loc))
}

// AddDays shifts an ISO day by n days
func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, n)), nil
}

// WeekRange returns the Monday..Sunday week containing date
func WeekRange(date string) (string, string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", "", err
	}
	// time.Weekday: Sunday=0 … Saturday=6; shift so Monday=0
	offset := (int(t.Weekday()) + 6) % 7
	start := t.AddDate(0, 0, -offset)
	return FormatDate(start), FormatDate(start.AddDate(0, 0, 6)), nil
}

// MonthRange returns the first and last day of date's month
func MonthRange(date string) (string, string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", "", err
	}
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return FormatDate(start), FormatDate(start.AddDate(0, 1, -1)), nil
}

// Range returns the window for view anchored at date
func Range(view View, date string) (string, string, error) {
	switch view {
	case ViewWeekly:
		return WeekRange(date)
	case ViewMonthly:
		return MonthRange(date)
	}
	return "", "", fmt.Errorf("unknown view %q", view)
}

// DaysIn lists every day from start to end inclusive
func DaysIn(start, end string) ([]string, error) {
	s, err := ParseDate(start)
	if err != nil {
		return nil, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return nil, err
	}
	if e.Before(s) {
		return nil, fmt.Errorf("range end %s before start %s", end, start)
	}

	days := make([]string, 0, int(e.Sub(s).Hours()/24)+1)
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		days = append(days, FormatDate(d))
	}
	return days, nil
}

// PeriodSummary aggregated results over a range of days
type PeriodSummary struct {
	ChildID             string          `json:"child_id"`
	Start               string          `json:"start"`
	End                 string          `json:"end"`
	SuccessfulDays      int             `json:"successful_days"`
	TotalDays           int             `json:"total_days"`
	VacationDays        int             `json:"vacation_days"`
	SuccessRate         int             `json:"success_rate"` // percent, rounded
	TotalAcademicTime   int             `json:"total_academic_time"`
	TotalSkillTime      int             `json:"total_skill_time"`
	TotalChores         int             `json:"total_chores"`
	TotalBehaviorIssues int             `json:"total_behavior_issues"`
	TotalMinutesLost    int             `json:"total_minutes_lost"`
	TotalMinecraftTime  int             `json:"total_minecraft_time"`
	Breakdown           []DailyProgress `json:"breakdown"`
}

// Summarize applies Calculate to every day in days and aggregates the
// results. Vacation days contribute zero progress, exactly as on the daily
// view.
func Summarize(childID string, days []string, snap Snapshot) PeriodSummary {
	sum := PeriodSummary{
		ChildID:   childID,
		TotalDays: len(days),
		Breakdown: make([]DailyProgress, 0, len(days)),
	}
	if len(days) > 0 {
		sum.Start = days[0]
		sum.End = days[len(days)-1]
	}

	for _, day := range days {
		p := Calculate(childID, day, snap)
		sum.Breakdown = append(sum.Breakdown, p)

		if p.Vacation {
			sum.VacationDays++
			continue
		}
		if p.AllGoalsMet() {
			sum.SuccessfulDays++
		}
		sum.TotalAcademicTime += p.AcademicTime
		sum.TotalSkillTime += p.SkillTime
		sum.TotalChores += p.ChoresCompleted
		sum.TotalBehaviorIssues += p.BehaviorCount
		sum.TotalMinutesLost += p.BehaviorDeductions
		sum.TotalMinecraftTime += p.MinecraftTime
	}

	if sum.TotalDays > 0 {
		sum.SuccessRate = int(math.Round(float64(sum.SuccessfulDays) / float64(sum.TotalDays) * 100))
	}
	return sum
}
