// Package progress computes the daily reward state of a child from a snapshot
// of logged activities, behaviors and vacation days. Everything here is pure:
// the same snapshot always yields the same result.
package progress

import "summer-success/tracker/internal/model"

// Goal thresholds and reward. These are product rules, not configuration.
const (
	AcademicGoalMinutes = 120
	SkillGoalMinutes    = 60
	ChoreGoalCount      = 2
	BaseRewardMinutes   = 45
)

// Snapshot the collections a calculation reads from
type Snapshot struct {
	Activities   []model.Activity
	Behaviors    []model.Behavior
	VacationDays map[string]bool
}

// NewSnapshot builds a Snapshot, turning the vacation date list into a set
func NewSnapshot(activities []model.Activity, behaviors []model.Behavior, vacationDates []string) Snapshot {
	set := make(map[string]bool, len(vacationDates))
	for _, d := range vacationDates {
		set[d] = true
	}
	return Snapshot{Activities: activities, Behaviors: behaviors, VacationDays: set}
}

// IsVacation reports whether date is a vacation day
func (s Snapshot) IsVacation(date string) bool {
	return s.VacationDays[date]
}

// DailyProgress reward state of one child on one day. Never persisted.
type DailyProgress struct {
	ChildID            string `json:"child_id"`
	Date               string `json:"date"`
	AcademicTime       int    `json:"academic_time"`
	SkillTime          int    `json:"skill_time"`
	ChoresCompleted    int    `json:"chores_completed"`
	MinecraftTime      int    `json:"minecraft_time"`
	BehaviorCount      int    `json:"behavior_count"`
	BehaviorDeductions int    `json:"behavior_deductions"`
	GoalsMet           int    `json:"goals_met"`
	Vacation           bool   `json:"vacation"`
}

// AllGoalsMet reports whether all three thresholds were reached
func (p DailyProgress) AllGoalsMet() bool {
	return p.GoalsMet == 3
}

// Calculate computes the reward state for childID on date.
//
// A vacation day yields all-zero progress. Otherwise only completed
// activities of that child and day count; absent durations and deductions
// count as zero. An unknown child simply has nothing logged and gets zero
// progress.
func Calculate(childID, date string, snap Snapshot) DailyProgress {
	p := DailyProgress{ChildID: childID, Date: date}

	if snap.IsVacation(date) {
		p.Vacation = true
		return p
	}

	for i := range snap.Activities {
		a := &snap.Activities[i]
		if a.ChildID != childID || a.Date != date || !a.Completed {
			continue
		}
		switch a.Type {
		case model.ActivityEducation:
			p.AcademicTime += a.Minutes()
		case model.ActivitySkill:
			p.SkillTime += a.Minutes()
		case model.ActivityChore:
			p.ChoresCompleted++
		}
	}

	for i := range snap.Behaviors {
		b := &snap.Behaviors[i]
		if b.ChildID != childID || b.Date != date {
			continue
		}
		p.BehaviorCount++
		p.BehaviorDeductions += b.Minutes()
	}

	p.GoalsMet = goalsMet(p.AcademicTime, p.SkillTime, p.ChoresCompleted)
	if p.AllGoalsMet() {
		p.MinecraftTime = max(0, BaseRewardMinutes-p.BehaviorDeductions)
	}

	return p
}

// GoalsReached is the daily goal predicate
func GoalsReached(academic, skill, chores int) bool {
	return goalsMet(academic, skill, chores) == 3
}

func goalsMet(academic, skill, chores int) int {
	n := 0
	if academic >= AcademicGoalMinutes {
		n++
	}
	if skill >= SkillGoalMinutes {
		n++
	}
	if chores >= ChoreGoalCount {
		n++
	}
	return n
}
