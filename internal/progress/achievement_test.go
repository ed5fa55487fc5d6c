package progress

import (
	"testing"

	"summer-success/tracker/internal/model"
)

func streakSnapshot(goalDays []string, vacation []string) Snapshot {
	var acts []model.Activity
	for _, d := range goalDays {
		acts = append(acts, goalDay(kid, d)...)
	}
	return NewSnapshot(acts, nil, vacation)
}

func TestCurrentStreak(t *testing.T) {
	tests := []struct {
		name     string
		goalDays []string
		vacation []string
		today    string
		want     int
	}{
		{
			name:  "no activity",
			today: "2025-07-20",
			want:  0,
		},
		{
			name:     "three days ending today",
			goalDays: []string{"2025-07-18", "2025-07-19", "2025-07-20"},
			today:    "2025-07-20",
			want:     3,
		},
		{
			name:     "today still in progress",
			goalDays: []string{"2025-07-18", "2025-07-19"},
			today:    "2025-07-20",
			want:     2,
		},
		{
			name:     "gap breaks streak",
			goalDays: []string{"2025-07-16", "2025-07-18", "2025-07-19"},
			today:    "2025-07-19",
			want:     2,
		},
		{
			name:     "vacation does not break streak",
			goalDays: []string{"2025-07-16", "2025-07-17", "2025-07-19"},
			vacation: []string{"2025-07-18"},
			today:    "2025-07-19",
			want:     3,
		},
		{
			name:     "missed yesterday",
			goalDays: []string{"2025-07-17"},
			today:    "2025-07-20",
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CurrentStreak(kid, tt.today, streakSnapshot(tt.goalDays, tt.vacation))
			if got != tt.want {
				t.Errorf("streak=%d, want %d", got, tt.want)
			}
		})
	}
}

func TestCurrentStreak_BadDate(t *testing.T) {
	if got := CurrentStreak(kid, "yesterday", streakSnapshot([]string{day}, nil)); got != 0 {
		t.Errorf("expected 0 for malformed date, got %d", got)
	}
}

func TestAchievements(t *testing.T) {
	var goalDays []string
	for d := 14; d <= 20; d++ {
		goalDays = append(goalDays, "2025-07-"+itoa2(d))
	}
	snap := streakSnapshot(goalDays, nil)
	// incomplete activities never count
	snap.Activities = append(snap.Activities, act(kid, "2025-07-20", model.ActivityChore, 0, false))

	got := make(map[string]Achievement)
	for _, a := range Achievements(kid, "2025-07-20", snap) {
		got[a.ID] = a
	}

	expect := map[string]struct {
		current  int
		unlocked bool
	}{
		"first-step":     {35, true},
		"week-warrior":   {7, true},
		"study-master":   {840, true},
		"chore-champion": {14, false},
		"all-star":       {35, false},
		"lightning-fast": {5, true},
	}
	for id, want := range expect {
		a, ok := got[id]
		if !ok {
			t.Errorf("missing achievement %s", id)
			continue
		}
		if a.Current != want.current || a.Unlocked != want.unlocked {
			t.Errorf("%s: current=%d unlocked=%v, want %d/%v", id, a.Current, a.Unlocked, want.current, want.unlocked)
		}
	}
}

func itoa2(n int) string {
	return string([]byte{byte('0' + n/10), byte('0' + n%10)})
}
