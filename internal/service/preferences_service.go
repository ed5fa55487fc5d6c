package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"summer-success/tracker/internal/dto"
	"summer-success/tracker/internal/model"
	"summer-success/tracker/internal/repository"
)

// PreferencesService presentation preferences
type PreferencesService interface {
	Get(ctx context.Context) (*dto.PreferencesResponse, error)
	Update(ctx context.Context, req *dto.UpdatePreferencesRequest) (*dto.PreferencesResponse, error)
}

type preferencesService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPreferencesService creates a PreferencesService
func NewPreferencesService(repo *repository.Repository, logger *zap.Logger) PreferencesService {
	return &preferencesService{repo: repo, logger: logger}
}

// ────────────────────── Get ──────────────────────

func (s *preferencesService) Get(ctx context.Context) (*dto.PreferencesResponse, error) {
	prefs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return toPreferencesResponse(prefs), nil
}

// ────────────────────── Update ──────────────────────

func (s *preferencesService) Update(ctx context.Context, req *dto.UpdatePreferencesRequest) (*dto.PreferencesResponse, error) {
	prefs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if req.Theme != nil {
		prefs.Theme = model.Theme(*req.Theme)
	}
	if req.CelebrationsEnabled != nil {
		prefs.CelebrationsEnabled = *req.CelebrationsEnabled
	}

	if err := s.repo.Preferences.Save(ctx, prefs); err != nil {
		s.logger.Error("save preferences failed", zap.Error(err))
		return nil, err
	}
	return toPreferencesResponse(prefs), nil
}

// load returns the stored row or the defaults when none exists yet
func (s *preferencesService) load(ctx context.Context) (*model.Preferences, error) {
	prefs, err := s.repo.Preferences.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.DefaultPreferences(), nil
		}
		s.logger.Error("load preferences failed", zap.Error(err))
		return nil, err
	}
	return prefs, nil
}

func toPreferencesResponse(p *model.Preferences) *dto.PreferencesResponse {
	return &dto.PreferencesResponse{
		Theme:               string(p.Theme),
		CelebrationsEnabled: p.CelebrationsEnabled,
		UpdatedAt:           formatTime(p.UpdatedAt),
	}
}
