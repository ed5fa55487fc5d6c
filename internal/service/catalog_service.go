package service

import (
	"summer-success/tracker/internal/dto"
	"summer-success/tracker/internal/model"
	"summer-success/tracker/internal/progress"
)

// CatalogService the fixed category and behavior catalogues
type CatalogService interface {
	Get() *dto.CatalogResponse
}

type catalogService struct{}

// NewCatalogService creates a CatalogService
func NewCatalogService() CatalogService {
	return catalogService{}
}

func (catalogService) Get() *dto.CatalogResponse {
	categories := make(map[string][]string, 3)
	for _, t := range []model.ActivityType{model.ActivityChore, model.ActivityEducation, model.ActivitySkill} {
		categories[string(t)] = model.Categories(t)
	}

	return &dto.CatalogResponse{
		Categories:    categories,
		BehaviorTypes: model.BehaviorTypes(),
		Deduction:     model.BehaviorDeduction,
		Goals: dto.GoalsResponse{
			AcademicMinutes: progress.AcademicGoalMinutes,
			SkillMinutes:    progress.SkillGoalMinutes,
			Chores:          progress.ChoreGoalCount,
			RewardMinutes:   progress.BaseRewardMinutes,
		},
	}
}
