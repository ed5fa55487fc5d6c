package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"summer-success/tracker/internal/dto"
	"summer-success/tracker/internal/model"
	"summer-success/tracker/internal/progress"
	"summer-success/tracker/internal/repository"
)

// ErrInvalidView a summary view other than weekly or monthly
var ErrInvalidView = errors.New("view must be weekly or monthly")

const analyticsWindowDays = 7

// StatsService period summaries and analytics
type StatsService interface {
	Period(ctx context.Context, childID, view, date string) (*dto.PeriodResponse, error)
	Analytics(ctx context.Context, date string) (*dto.AnalyticsResponse, error)
}

type statsService struct {
	repo   *repository.Repository
	cal    *Calendar
	logger *zap.Logger
}

// NewStatsService creates a StatsService
func NewStatsService(repo *repository.Repository, cal *Calendar, logger *zap.Logger) StatsService {
	return &statsService{repo: repo, cal: cal, logger: logger}
}

// ────────────────────── Period ──────────────────────

func (s *statsService) Period(ctx context.Context, childID, view, date string) (*dto.PeriodResponse, error) {
	if view == "" {
		view = string(progress.ViewWeekly)
	}
	date, err := s.cal.Resolve(date)
	if err != nil {
		return nil, err
	}
	start, end, err := progress.Range(progress.View(view), date)
	if err != nil {
		return nil, ErrInvalidView
	}
	days, err := progress.DaysIn(start, end)
	if err != nil {
		return nil, err
	}

	child, err := findChild(ctx, s.repo, childID)
	if err != nil {
		if !errors.Is(err, ErrChildNotFound) {
			s.logger.Error("lookup child failed", zap.Error(err))
		}
		return nil, err
	}

	snap, err := s.load(ctx, repository.RecordFilter{ChildID: childID, Start: start, End: end})
	if err != nil {
		return nil, err
	}

	return &dto.PeriodResponse{
		PeriodSummary: progress.Summarize(childID, days, snap),
		View:          view,
		ChildName:     child.Name,
	}, nil
}

// ────────────────────── Analytics ──────────────────────

// Analytics builds the last-seven-days series, type distribution and
// per-child totals, streaks and badges. Only completed activities count.
func (s *statsService) Analytics(ctx context.Context, date string) (*dto.AnalyticsResponse, error) {
	today, err := s.cal.Resolve(date)
	if err != nil {
		return nil, err
	}
	windowStart, err := progress.AddDays(today, -(analyticsWindowDays - 1))
	if err != nil {
		return nil, err
	}

	children, err := s.repo.Child.List(ctx)
	if err != nil {
		s.logger.Error("list children failed", zap.Error(err))
		return nil, err
	}
	snap, err := s.load(ctx, repository.RecordFilter{End: today})
	if err != nil {
		return nil, err
	}

	// last seven days
	days, _ := progress.DaysIn(windowStart, today)
	byDay := make(map[string]*dto.DayTotals, len(days))
	series := make([]dto.DayTotals, len(days))
	for i, d := range days {
		series[i].Date = d
		byDay[d] = &series[i]
	}

	typeCounts := map[string]int{
		string(model.ActivityChore):     0,
		string(model.ActivityEducation): 0,
		string(model.ActivitySkill):     0,
	}
	type minutes struct{ education, skill int }
	perChild := make(map[string]*minutes, len(children))
	for _, c := range children {
		perChild[c.ChildID] = &minutes{}
	}

	for i := range snap.Activities {
		a := &snap.Activities[i]
		if !a.Completed {
			continue
		}
		typeCounts[string(a.Type)]++

		if m, ok := perChild[a.ChildID]; ok {
			switch a.Type {
			case model.ActivityEducation:
				m.education += a.Minutes()
			case model.ActivitySkill:
				m.skill += a.Minutes()
			}
		}

		if t, ok := byDay[a.Date]; ok {
			switch a.Type {
			case model.ActivityEducation:
				t.Education += a.Minutes()
			case model.ActivitySkill:
				t.Skill += a.Minutes()
			case model.ActivityChore:
				t.Chores++
			}
		}
	}

	resp := &dto.AnalyticsResponse{
		Date:          today,
		LastSevenDays: series,
		TypeCounts:    typeCounts,
		Children:      make([]dto.ChildAnalytics, 0, len(children)),
	}
	for _, c := range children {
		m := perChild[c.ChildID]
		resp.Children = append(resp.Children, dto.ChildAnalytics{
			ChildID:          c.ChildID,
			Name:             c.Name,
			EducationMinutes: m.education,
			SkillMinutes:     m.skill,
			CurrentStreak:    progress.CurrentStreak(c.ChildID, today, snap),
			Achievements:     progress.Achievements(c.ChildID, today, snap),
		})
	}
	return resp, nil
}

func (s *statsService) load(ctx context.Context, filter repository.RecordFilter) (progress.Snapshot, error) {
	activities, err := s.repo.Activity.ListChronological(ctx, filter)
	if err != nil {
		s.logger.Error("load activities failed", zap.Error(err))
		return progress.Snapshot{}, err
	}
	behaviors, err := s.repo.Behavior.List(ctx, filter)
	if err != nil {
		s.logger.Error("load behaviors failed", zap.Error(err))
		return progress.Snapshot{}, err
	}
	vacation, err := s.repo.VacationDay.List(ctx, filter.Start, filter.End)
	if err != nil {
		s.logger.Error("load vacation days failed", zap.Error(err))
		return progress.Snapshot{}, err
	}
	return progress.NewSnapshot(activities, behaviors, vacationDates(vacation)), nil
}
