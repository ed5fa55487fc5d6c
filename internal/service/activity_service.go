package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"summer-success/tracker/internal/dto"
	"summer-success/tracker/internal/model"
	"summer-success/tracker/internal/repository"
	pkgerrors "summer-success/tracker/pkg/errors"
	"summer-success/tracker/pkg/metrics"
)

// ── Activity errors ──

var (
	ErrActivityNotFound    = errors.New("activity not found")
	ErrInvalidActivityType = errors.New("type must be chore, education or skill")
	ErrInvalidCategory     = errors.New("category is not valid for this activity type")
	ErrDescriptionRequired = errors.New("description is required")
	ErrDurationRequired    = errors.New("duration in minutes is required for education and skill activities")
	ErrVacationDay         = errors.New("date is a vacation day")
)

// ActivityService activity logging
type ActivityService interface {
	Create(ctx context.Context, req *dto.CreateActivityRequest) (*dto.ActivityResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ActivityResponse, error)
	List(ctx context.Context, req *dto.ActivityListRequest) ([]dto.ActivityResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateActivityRequest) (*dto.ActivityResponse, error)
	ToggleCompleted(ctx context.Context, id string, version int) (*dto.ActivityResponse, error)
	Delete(ctx context.Context, id string) error
}

type activityService struct {
	repo   *repository.Repository
	cal    *Calendar
	logger *zap.Logger
}

// NewActivityService creates an ActivityService
func NewActivityService(repo *repository.Repository, cal *Calendar, logger *zap.Logger) ActivityService {
	return &activityService{repo: repo, cal: cal, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *activityService) Create(ctx context.Context, req *dto.CreateActivityRequest) (*dto.ActivityResponse, error) {
	// 1. child
	if _, err := findChild(ctx, s.repo, req.ChildID); err != nil {
		if !errors.Is(err, ErrChildNotFound) {
			s.logger.Error("lookup child failed", zap.Error(err))
		}
		return nil, err
	}

	// 2. type, category, description, duration
	typ := model.ActivityType(req.Type)
	if !typ.Valid() {
		return nil, ErrInvalidActivityType
	}
	if !model.IsCategory(typ, req.Category) {
		return nil, ErrInvalidCategory
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, ErrDescriptionRequired
	}
	duration, err := normalizeDuration(typ, req.Duration)
	if err != nil {
		return nil, err
	}

	// 3. date, never on a vacation day
	date, err := s.cal.Resolve(req.Date)
	if err != nil {
		return nil, err
	}
	onVacation, err := s.repo.VacationDay.Exists(ctx, date)
	if err != nil {
		s.logger.Error("check vacation day failed", zap.Error(err))
		return nil, err
	}
	if onVacation {
		return nil, ErrVacationDay
	}

	activity := &model.Activity{
		ChildID:     req.ChildID,
		Date:        date,
		Type:        typ,
		Category:    req.Category,
		Description: description,
		Duration:    duration,
		Completed:   true,
	}
	if err := s.repo.Activity.Create(ctx, activity); err != nil {
		s.logger.Error("create activity failed", zap.Error(err))
		return nil, err
	}

	metrics.ActivitiesLogged.WithLabelValues(string(typ)).Inc()
	s.logger.Info("activity logged",
		zap.String("activity_id", activity.ActivityID),
		zap.String("child_id", activity.ChildID),
		zap.String("date", date),
		zap.String("type", string(typ)),
	)

	resp := toActivityResponse(activity)
	return &resp, nil
}

// ────────────────────── Read ──────────────────────

func (s *activityService) GetByID(ctx context.Context, id string) (*dto.ActivityResponse, error) {
	activity, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toActivityResponse(activity)
	return &resp, nil
}

func (s *activityService) List(ctx context.Context, req *dto.ActivityListRequest) ([]dto.ActivityResponse, int64, error) {
	filter := repository.RecordFilter{
		ChildID: req.ChildID,
		Start:   req.Start,
		End:     req.End,
		Type:    req.Type,
		Offset:  req.GetOffset(),
		Limit:   req.GetPageSize(),
	}
	activities, total, err := s.repo.Activity.List(ctx, filter)
	if err != nil {
		s.logger.Error("list activities failed", zap.Error(err))
		return nil, 0, err
	}
	return toActivityResponses(activities), total, nil
}

// ────────────────────── Update ──────────────────────

func (s *activityService) Update(ctx context.Context, id string, req *dto.UpdateActivityRequest) (*dto.ActivityResponse, error) {
	activity, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if activity.Version != req.Version {
		return nil, pkgerrors.ErrOptimisticLock
	}

	if req.Category != nil {
		if !model.IsCategory(activity.Type, *req.Category) {
			return nil, ErrInvalidCategory
		}
		activity.Category = *req.Category
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description == "" {
			return nil, ErrDescriptionRequired
		}
		activity.Description = description
	}
	if req.Duration != nil || activity.Type.Timed() {
		duration := activity.Duration
		if req.Duration != nil {
			duration = req.Duration
		}
		if activity.Duration, err = normalizeDuration(activity.Type, duration); err != nil {
			return nil, err
		}
	}

	return s.save(ctx, activity)
}

func (s *activityService) ToggleCompleted(ctx context.Context, id string, version int) (*dto.ActivityResponse, error) {
	activity, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if activity.Version != version {
		return nil, pkgerrors.ErrOptimisticLock
	}

	activity.Completed = !activity.Completed
	return s.save(ctx, activity)
}

// ────────────────────── Delete ──────────────────────

func (s *activityService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Activity.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrActivityNotFound
		}
		s.logger.Error("delete activity failed", zap.String("activity_id", id), zap.Error(err))
		return err
	}
	s.logger.Info("activity deleted", zap.String("activity_id", id))
	return nil
}

// ── helpers ──

func (s *activityService) find(ctx context.Context, id string) (*model.Activity, error) {
	activity, err := s.repo.Activity.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		s.logger.Error("get activity failed", zap.String("activity_id", id), zap.Error(err))
		return nil, err
	}
	return activity, nil
}

func (s *activityService) save(ctx context.Context, activity *model.Activity) (*dto.ActivityResponse, error) {
	if err := s.repo.Activity.Update(ctx, activity); err != nil {
		if !errors.Is(err, pkgerrors.ErrOptimisticLock) {
			s.logger.Error("update activity failed", zap.String("activity_id", activity.ActivityID), zap.Error(err))
		}
		return nil, err
	}
	resp := toActivityResponse(activity)
	return &resp, nil
}

// normalizeDuration requires a positive duration for timed types and drops
// it for chores
func normalizeDuration(typ model.ActivityType, duration *int) (*int, error) {
	if !typ.Timed() {
		return nil, nil
	}
	if duration == nil || *duration <= 0 {
		return nil, ErrDurationRequired
	}
	d := *duration
	return &d, nil
}
