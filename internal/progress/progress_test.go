package progress

import (
	"testing"

	"summer-success/tracker/internal/model"
)

const (
	kid   = "child-1"
	other = "child-2"
	day   = "2025-07-14"
)

func mins(n int) *int { return &n }

func act(child, date string, typ model.ActivityType, duration int, completed bool) model.Activity {
	a := model.Activity{ChildID: child, Date: date, Type: typ, Completed: completed}
	if typ.Timed() {
		a.Duration = mins(duration)
	}
	return a
}

func beh(child, date string) model.Behavior {
	return model.Behavior{ChildID: child, Date: date, Type: "Lying", Deduction: mins(model.BehaviorDeduction)}
}

// goalDay returns activities that exactly meet every goal on date
func goalDay(child, date string) []model.Activity {
	return []model.Activity{
		act(child, date, model.ActivityEducation, 60, true),
		act(child, date, model.ActivityEducation, 60, true),
		act(child, date, model.ActivitySkill, 60, true),
		act(child, date, model.ActivityChore, 0, true),
		act(child, date, model.ActivityChore, 0, true),
	}
}

func behaviors(child, date string, n int) []model.Behavior {
	out := make([]model.Behavior, n)
	for i := range out {
		out[i] = beh(child, date)
	}
	return out
}

// ── Scenarios ──

func TestCalculate_NothingLogged(t *testing.T) {
	p := Calculate(kid, day, NewSnapshot(nil, nil, nil))

	if p.AcademicTime != 0 || p.SkillTime != 0 || p.ChoresCompleted != 0 || p.MinecraftTime != 0 {
		t.Errorf("expected all-zero progress, got %+v", p)
	}
	if p.ChildID != kid || p.Date != day {
		t.Errorf("child/date not echoed: %+v", p)
	}
}

func TestCalculate_GoalsMetNoBehaviors(t *testing.T) {
	p := Calculate(kid, day, NewSnapshot(goalDay(kid, day), nil, nil))

	if p.AcademicTime != 120 || p.SkillTime != 60 || p.ChoresCompleted != 2 {
		t.Errorf("unexpected totals: %+v", p)
	}
	if p.MinecraftTime != 45 {
		t.Errorf("expected 45 minecraft minutes, got %d", p.MinecraftTime)
	}
	if !p.AllGoalsMet() {
		t.Error("expected all goals met")
	}
}

func TestCalculate_OneBehavior(t *testing.T) {
	p := Calculate(kid, day, NewSnapshot(goalDay(kid, day), behaviors(kid, day, 1), nil))
	if p.MinecraftTime != 40 {
		t.Errorf("expected 40, got %d", p.MinecraftTime)
	}
	if p.BehaviorCount != 1 || p.BehaviorDeductions != 5 {
		t.Errorf("unexpected behavior totals: %+v", p)
	}
}

func TestCalculate_DeductionsClampAtZero(t *testing.T) {
	p := Calculate(kid, day, NewSnapshot(goalDay(kid, day), behaviors(kid, day, 10), nil))
	if p.MinecraftTime != 0 {
		t.Errorf("expected clamp to 0, got %d", p.MinecraftTime)
	}
}

func TestCalculate_VacationZeroesEverything(t *testing.T) {
	snap := NewSnapshot(goalDay(kid, day), behaviors(kid, day, 2), []string{day})
	p := Calculate(kid, day, snap)

	want := DailyProgress{ChildID: kid, Date: day, Vacation: true}
	if p != want {
		t.Errorf("expected %+v, got %+v", want, p)
	}
}

// ── Filtering ──

func TestCalculate_IgnoresIncompleteOtherChildAndOtherDay(t *testing.T) {
	acts := goalDay(kid, day)
	acts = append(acts,
		act(kid, day, model.ActivityEducation, 500, false),
		act(other, day, model.ActivitySkill, 500, true),
		act(kid, "2025-07-15", model.ActivityChore, 0, true),
	)
	behs := []model.Behavior{beh(other, day), beh(kid, "2025-07-13")}

	p := Calculate(kid, day, NewSnapshot(acts, behs, nil))
	if p.AcademicTime != 120 || p.SkillTime != 60 || p.ChoresCompleted != 2 {
		t.Errorf("filtering leaked other records: %+v", p)
	}
	if p.MinecraftTime != 45 {
		t.Errorf("expected 45, got %d", p.MinecraftTime)
	}
}

func TestCalculate_NilDurationAndDeductionCountAsZero(t *testing.T) {
	acts := goalDay(kid, day)
	acts = append(acts, model.Activity{ChildID: kid, Date: day, Type: model.ActivityEducation, Completed: true})
	behs := []model.Behavior{{ChildID: kid, Date: day, Type: "Lying"}}

	p := Calculate(kid, day, NewSnapshot(acts, behs, nil))
	if p.AcademicTime != 120 {
		t.Errorf("nil duration should add 0, got academic=%d", p.AcademicTime)
	}
	if p.BehaviorCount != 1 || p.BehaviorDeductions != 0 || p.MinecraftTime != 45 {
		t.Errorf("nil deduction should subtract 0: %+v", p)
	}
}

func TestCalculate_ChoreDurationIgnored(t *testing.T) {
	acts := []model.Activity{{ChildID: kid, Date: day, Type: model.ActivityChore, Duration: mins(90), Completed: true}}
	p := Calculate(kid, day, NewSnapshot(acts, nil, nil))
	if p.ChoresCompleted != 1 || p.AcademicTime != 0 || p.SkillTime != 0 {
		t.Errorf("chore duration must not count as time: %+v", p)
	}
}

func TestCalculate_UnknownChild(t *testing.T) {
	p := Calculate("ghost", day, NewSnapshot(goalDay(kid, day), behaviors(kid, day, 1), nil))
	if p.MinecraftTime != 0 || p.AcademicTime != 0 || p.BehaviorCount != 0 {
		t.Errorf("unknown child should have zero progress, got %+v", p)
	}
}

// ── Properties ──

func TestCalculate_ThresholdsGateReward(t *testing.T) {
	tests := []struct {
		name                    string
		academic, skill, chores int
		wantReward              int
		wantGoals               int
	}{
		{"all met", 120, 60, 2, 45, 3},
		{"academic short", 119, 60, 2, 0, 2},
		{"skill short", 120, 59, 2, 0, 2},
		{"chores short", 120, 60, 1, 0, 2},
		{"well over", 300, 200, 5, 45, 3},
		{"nothing", 0, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var acts []model.Activity
			if tt.academic > 0 {
				acts = append(acts, act(kid, day, model.ActivityEducation, tt.academic, true))
			}
			if tt.skill > 0 {
				acts = append(acts, act(kid, day, model.ActivitySkill, tt.skill, true))
			}
			for i := 0; i < tt.chores; i++ {
				acts = append(acts, act(kid, day, model.ActivityChore, 0, true))
			}

			p := Calculate(kid, day, NewSnapshot(acts, nil, nil))
			if p.MinecraftTime != tt.wantReward {
				t.Errorf("reward=%d, want %d", p.MinecraftTime, tt.wantReward)
			}
			if p.GoalsMet != tt.wantGoals {
				t.Errorf("goals met=%d, want %d", p.GoalsMet, tt.wantGoals)
			}
			if got := GoalsReached(tt.academic, tt.skill, tt.chores); got != (tt.wantGoals == 3) {
				t.Errorf("GoalsReached=%v", got)
			}
		})
	}
}

func TestCalculate_NeverNegative(t *testing.T) {
	for n := 0; n <= 20; n++ {
		p := Calculate(kid, day, NewSnapshot(goalDay(kid, day), behaviors(kid, day, n), nil))
		if p.MinecraftTime < 0 {
			t.Fatalf("negative reward with %d behaviors: %d", n, p.MinecraftTime)
		}
		want := max(0, 45-5*n)
		if p.MinecraftTime != want {
			t.Errorf("%d behaviors: reward=%d, want %d", n, p.MinecraftTime, want)
		}
	}
}

func TestCalculate_Idempotent(t *testing.T) {
	snap := NewSnapshot(goalDay(kid, day), behaviors(kid, day, 3), []string{"2025-07-01"})
	first := Calculate(kid, day, snap)
	second := Calculate(kid, day, snap)
	if first != second {
		t.Errorf("results differ: %+v vs %+v", first, second)
	}
}
