package handler

import "summer-success/tracker/internal/service"

// Handler aggregates every HTTP handler
type Handler struct {
	Auth        *AuthHandler
	Child       *ChildHandler
	Catalog     *CatalogHandler
	Activity    *ActivityHandler
	Behavior    *BehaviorHandler
	Vacation    *VacationHandler
	Progress    *ProgressHandler
	Stats       *StatsHandler
	Export      *ExportHandler
	Preferences *PreferencesHandler
}

// NewHandler wires handlers over svc
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(svc.Auth),
		Child:       NewChildHandler(svc.Child),
		Catalog:     NewCatalogHandler(svc.Catalog),
		Activity:    NewActivityHandler(svc.Activity),
		Behavior:    NewBehaviorHandler(svc.Behavior),
		Vacation:    NewVacationHandler(svc.Vacation),
		Progress:    NewProgressHandler(svc.Progress),
		Stats:       NewStatsHandler(svc.Stats),
		Export:      NewExportHandler(svc.Export),
		Preferences: NewPreferencesHandler(svc.Preferences),
	}
}
