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
)

// ── Child errors ──

var (
	ErrChildNotFound     = errors.New("child not found")
	ErrChildExists       = errors.New("a child with this name already exists")
	ErrChildNameRequired = errors.New("child name is required")
)

// ChildService tracked children
type ChildService interface {
	List(ctx context.Context) ([]dto.ChildResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ChildResponse, error)
	Create(ctx context.Context, req *dto.CreateChildRequest) (*dto.ChildResponse, error)
}

type childService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewChildService creates a ChildService
func NewChildService(repo *repository.Repository, logger *zap.Logger) ChildService {
	return &childService{repo: repo, logger: logger}
}

func (s *childService) List(ctx context.Context) ([]dto.ChildResponse, error) {
	children, err := s.repo.Child.List(ctx)
	if err != nil {
		s.logger.Error("list children failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ChildResponse, 0, len(children))
	for i := range children {
		result = append(result, toChildResponse(&children[i]))
	}
	return result, nil
}

func (s *childService) GetByID(ctx context.Context, id string) (*dto.ChildResponse, error) {
	child, err := findChild(ctx, s.repo, id)
	if err != nil {
		if !errors.Is(err, ErrChildNotFound) {
			s.logger.Error("get child failed", zap.String("child_id", id), zap.Error(err))
		}
		return nil, err
	}
	resp := toChildResponse(child)
	return &resp, nil
}

func (s *childService) Create(ctx context.Context, req *dto.CreateChildRequest) (*dto.ChildResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrChildNameRequired
	}

	if _, err := s.repo.Child.GetByName(ctx, name); err == nil {
		return nil, ErrChildExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("lookup child by name failed", zap.Error(err))
		return nil, err
	}

	child := &model.Child{Name: name}
	if err := s.repo.Child.Create(ctx, child); err != nil {
		s.logger.Error("create child failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("child created", zap.String("child_id", child.ChildID), zap.String("name", name))
	resp := toChildResponse(child)
	return &resp, nil
}

// findChild loads a child, mapping a missing row to ErrChildNotFound
func findChild(ctx context.Context, repo *repository.Repository, id string) (*model.Child, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrChildNotFound
	}
	child, err := repo.Child.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChildNotFound
		}
		return nil, err
	}
	return child, nil
}
