package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"summer-success/tracker/internal/dto"
	"summer-success/tracker/internal/model"
	"summer-success/tracker/internal/progress"
	"summer-success/tracker/internal/repository"
	"summer-success/tracker/pkg/metrics"
)

const recentActivityLimit = 10

// ProgressService daily reward state
type ProgressService interface {
	Daily(ctx context.Context, childID, date string) (*dto.DailyProgressResponse, error)
	Dashboard(ctx context.Context, date string) (*dto.DashboardResponse, error)
}

type progressService struct {
	repo         *repository.Repository
	cal          *Calendar
	celebrations CelebrationStore
	logger       *zap.Logger
}

// NewProgressService creates a ProgressService
func NewProgressService(repo *repository.Repository, cal *Calendar, celebrations CelebrationStore, logger *zap.Logger) ProgressService {
	return &progressService{repo: repo, cal: cal, celebrations: celebrations, logger: logger}
}

// ────────────────────── Daily ──────────────────────

func (s *progressService) Daily(ctx context.Context, childID, date string) (*dto.DailyProgressResponse, error) {
	date, err := s.cal.Resolve(date)
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

	snap, err := s.snapshot(ctx, childID, date)
	if err != nil {
		return nil, err
	}

	p := progress.Calculate(childID, date, snap)
	return &dto.DailyProgressResponse{
		DailyProgress: p,
		ChildName:     child.Name,
		Celebrate:     s.celebrate(ctx, p, s.celebrationsEnabled(ctx)),
	}, nil
}

// ────────────────────── Dashboard ──────────────────────

func (s *progressService) Dashboard(ctx context.Context, date string) (*dto.DashboardResponse, error) {
	date, err := s.cal.Resolve(date)
	if err != nil {
		return nil, err
	}

	children, err := s.repo.Child.List(ctx)
	if err != nil {
		s.logger.Error("list children failed", zap.Error(err))
		return nil, err
	}
	snap, err := s.snapshot(ctx, "", date)
	if err != nil {
		return nil, err
	}
	recent, _, err := s.repo.Activity.List(ctx, repository.RecordFilter{Limit: recentActivityLimit})
	if err != nil {
		s.logger.Error("list recent activities failed", zap.Error(err))
		return nil, err
	}

	enabled := s.celebrationsEnabled(ctx)
	resp := &dto.DashboardResponse{
		Date:             date,
		Vacation:         snap.IsVacation(date),
		Children:         make([]dto.DailyProgressResponse, 0, len(children)),
		RecentActivities: toActivityResponses(recent),
	}
	for _, child := range children {
		p := progress.Calculate(child.ChildID, date, snap)
		resp.Children = append(resp.Children, dto.DailyProgressResponse{
			DailyProgress: p,
			ChildName:     child.Name,
			Celebrate:     s.celebrate(ctx, p, enabled),
		})
	}
	return resp, nil
}

// ── helpers ──

// snapshot loads one day of records; an empty childID loads every child
func (s *progressService) snapshot(ctx context.Context, childID, date string) (progress.Snapshot, error) {
	filter := repository.RecordFilter{ChildID: childID, Start: date, End: date}

	activities, err := s.repo.Activity.ListChronological(ctx, filter)
	if err != nil {
		s.logger.Error("load activities failed", zap.String("date", date), zap.Error(err))
		return progress.Snapshot{}, err
	}
	behaviors, err := s.repo.Behavior.List(ctx, filter)
	if err != nil {
		s.logger.Error("load behaviors failed", zap.String("date", date), zap.Error(err))
		return progress.Snapshot{}, err
	}
	onVacation, err := s.repo.VacationDay.Exists(ctx, date)
	if err != nil {
		s.logger.Error("check vacation day failed", zap.String("date", date), zap.Error(err))
		return progress.Snapshot{}, err
	}

	var vacation []string
	if onVacation {
		vacation = []string{date}
	}
	return progress.NewSnapshot(activities, behaviors, vacation), nil
}

// celebrate reports whether this is the first observation of reward time for
// the child and day. Store failures suppress the celebration.
func (s *progressService) celebrate(ctx context.Context, p progress.DailyProgress, enabled bool) bool {
	if !enabled || p.MinecraftTime <= 0 {
		return false
	}
	first, err := s.celebrations.MarkCelebrated(ctx, p.ChildID, p.Date)
	if err != nil {
		s.logger.Warn("celebration store unavailable", zap.String("child_id", p.ChildID), zap.Error(err))
		return false
	}
	if first {
		metrics.Celebrations.Inc()
	}
	return first
}

func (s *progressService) celebrationsEnabled(ctx context.Context) bool {
	prefs, err := s.repo.Preferences.Get(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("load preferences failed", zap.Error(err))
		}
		return model.DefaultPreferences().CelebrationsEnabled
	}
	return prefs.CelebrationsEnabled
}
