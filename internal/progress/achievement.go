package progress

import "summer-success/tracker/internal/model"

// CurrentStreak counts consecutive successful days ending at today. A today
// that has not reached its goals yet does not break the streak; counting then
// starts from yesterday. Vacation days are skipped without breaking it.
func CurrentStreak(childID, today string, snap Snapshot) int {
	day, err := ParseDate(today)
	if err != nil {
		return 0
	}

	earliest := earliestDate(childID, snap)
	if earliest == "" {
		return 0
	}

	streak := 0
	first := true
	for {
		date := FormatDate(day)
		if date < earliest {
			return streak
		}
		day = day.AddDate(0, 0, -1)

		if snap.IsVacation(date) {
			first = false
			continue
		}
		p := Calculate(childID, date, snap)
		if p.AllGoalsMet() {
			streak++
		} else if !first {
			return streak
		}
		first = false
	}
}

func earliestDate(childID string, snap Snapshot) string {
	earliest := ""
	for i := range snap.Activities {
		a := &snap.Activities[i]
		if a.ChildID != childID || !a.Completed {
			continue
		}
		if earliest == "" || a.Date < earliest {
			earliest = a.Date
		}
	}
	return earliest
}

// Achievement a badge and how close the child is to it
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Current     int    `json:"current"`
	Target      int    `json:"target"`
	Unlocked    bool   `json:"unlocked"`
}

// Achievements evaluates every badge for childID. Only completed activities
// count.
func Achievements(childID, today string, snap Snapshot) []Achievement {
	var (
		total       int
		eduMinutes  int
		chores      int
		bestOneDay  int
		perDayCount = make(map[string]int)
	)
	for i := range snap.Activities {
		a := &snap.Activities[i]
		if a.ChildID != childID || !a.Completed {
			continue
		}
		total++
		switch a.Type {
		case model.ActivityEducation:
			eduMinutes += a.Minutes()
		case model.ActivityChore:
			chores++
		}
		perDayCount[a.Date]++
		if perDayCount[a.Date] > bestOneDay {
			bestOneDay = perDayCount[a.Date]
		}
	}
	streak := CurrentStreak(childID, today, snap)

	list := []Achievement{
		{ID: "first-step", Name: "First Step", Description: "Complete your first activity", Current: total, Target: 1},
		{ID: "week-warrior", Name: "Week Warrior", Description: "Complete 7 days in a row", Current: streak, Target: 7},
		{ID: "study-master", Name: "Study Master", Description: "Complete 10 hours of education", Current: eduMinutes, Target: 600},
		{ID: "chore-champion", Name: "Chore Champion", Description: "Complete 20 chores", Current: chores, Target: 20},
		{ID: "all-star", Name: "All Star", Description: "Complete 50 total activities", Current: total, Target: 50},
		{ID: "lightning-fast", Name: "Lightning Fast", Description: "Complete 5 activities in one day", Current: bestOneDay, Target: 5},
	}
	for i := range list {
		list[i].Unlocked = list[i].Current >= list[i].Target
	}
	return list
}
