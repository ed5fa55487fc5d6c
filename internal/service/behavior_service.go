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
	"summer-success/tracker/pkg/metrics"
)

// ── Behavior errors ──

var (
	ErrBehaviorNotFound    = errors.New("behavior not found")
	ErrInvalidBehaviorType = errors.New("behavior type is not in the catalogue")
)

// BehaviorService behavior logging
type BehaviorService interface {
	Create(ctx context.Context, req *dto.CreateBehaviorRequest) (*dto.BehaviorResponse, error)
	List(ctx context.Context, req *dto.BehaviorListRequest) ([]dto.BehaviorResponse, error)
	Delete(ctx context.Context, id string) error
}

type behaviorService struct {
	repo   *repository.Repository
	cal    *Calendar
	logger *zap.Logger
}

// NewBehaviorService creates a BehaviorService
func NewBehaviorService(repo *repository.Repository, cal *Calendar, logger *zap.Logger) BehaviorService {
	return &behaviorService{repo: repo, cal: cal, logger: logger}
}

// Create records a behavior with the fixed deduction. Vacation days are
// accepted; a vacation day's progress is zero regardless.
func (s *behaviorService) Create(ctx context.Context, req *dto.CreateBehaviorRequest) (*dto.BehaviorResponse, error) {
	if _, err := findChild(ctx, s.repo, req.ChildID); err != nil {
		if !errors.Is(err, ErrChildNotFound) {
			s.logger.Error("lookup child failed", zap.Error(err))
		}
		return nil, err
	}
	if !model.IsBehaviorType(req.Type) {
		return nil, ErrInvalidBehaviorType
	}
	date, err := s.cal.Resolve(req.Date)
	if err != nil {
		return nil, err
	}

	deduction := model.BehaviorDeduction
	behavior := &model.Behavior{
		ChildID:   req.ChildID,
		Date:      date,
		Type:      req.Type,
		Deduction: &deduction,
		Notes:     strings.TrimSpace(req.Notes),
	}
	if err := s.repo.Behavior.Create(ctx, behavior); err != nil {
		s.logger.Error("create behavior failed", zap.Error(err))
		return nil, err
	}

	metrics.BehaviorsLogged.Inc()
	s.logger.Info("behavior logged",
		zap.String("behavior_id", behavior.BehaviorID),
		zap.String("child_id", behavior.ChildID),
		zap.String("date", date),
	)

	resp := toBehaviorResponse(behavior)
	return &resp, nil
}

func (s *behaviorService) List(ctx context.Context, req *dto.BehaviorListRequest) ([]dto.BehaviorResponse, error) {
	behaviors, err := s.repo.Behavior.List(ctx, repository.RecordFilter{
		ChildID: req.ChildID,
		Start:   req.Start,
		End:     req.End,
	})
	if err != nil {
		s.logger.Error("list behaviors failed", zap.Error(err))
		return nil, err
	}
	return toBehaviorResponses(behaviors), nil
}

func (s *behaviorService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Behavior.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBehaviorNotFound
		}
		s.logger.Error("delete behavior failed", zap.String("behavior_id", id), zap.Error(err))
		return err
	}
	s.logger.Info("behavior deleted", zap.String("behavior_id", id))
	return nil
}
