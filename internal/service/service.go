package service

import (
	"go.uber.org/zap"

	"summer-success/tracker/config"
	"summer-success/tracker/internal/repository"
	"summer-success/tracker/pkg/jwt"
)

// Service aggregates every business service
type Service struct {
	Auth        AuthService
	Child       ChildService
	Catalog     CatalogService
	Activity    ActivityService
	Behavior    BehaviorService
	Vacation    VacationService
	Progress    ProgressService
	Stats       StatsService
	Export      ExportService
	Preferences PreferencesService
}

// Deps optional infrastructure. Nil fields fall back to in-process
// implementations.
type Deps struct {
	Blacklist    TokenBlacklist
	Celebrations CelebrationStore
}

// NewService wires every service over repo
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	deps Deps,
	logger *zap.Logger,
) *Service {
	cal := NewCalendar(cfg.Tracker.Location())

	celebrations := deps.Celebrations
	if celebrations == nil {
		celebrations = NewMemoryCelebrationStore(cfg.Tracker.CelebrationTTL)
	}

	return &Service{
		Auth:        NewAuthService(&cfg.Auth, jwtMgr, deps.Blacklist, logger),
		Child:       NewChildService(repo, logger),
		Catalog:     NewCatalogService(),
		Activity:    NewActivityService(repo, cal, logger),
		Behavior:    NewBehaviorService(repo, cal, logger),
		Vacation:    NewVacationService(repo, cal, logger),
		Progress:    NewProgressService(repo, cal, celebrations, logger),
		Stats:       NewStatsService(repo, cal, logger),
		Export:      NewExportService(repo, cal, logger),
		Preferences: NewPreferencesService(repo, logger),
	}
}
