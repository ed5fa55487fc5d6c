package service

import (
	"time"

	"summer-success/tracker/internal/dto"
	"summer-success/tracker/internal/model"
)

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func toChildResponse(c *model.Child) dto.ChildResponse {
	return dto.ChildResponse{
		ID:        c.ChildID,
		Name:      c.Name,
		CreatedAt: formatTime(c.CreatedAt),
	}
}

func toActivityResponse(a *model.Activity) dto.ActivityResponse {
	return dto.ActivityResponse{
		ID:          a.ActivityID,
		ChildID:     a.ChildID,
		Date:        a.Date,
		Type:        string(a.Type),
		Category:    a.Category,
		Description: a.Description,
		Duration:    a.Duration,
		Completed:   a.Completed,
		Version:     a.Version,
		CreatedAt:   formatTime(a.CreatedAt),
	}
}

func toActivityResponses(list []model.Activity) []dto.ActivityResponse {
	out := make([]dto.ActivityResponse, 0, len(list))
	for i := range list {
		out = append(out, toActivityResponse(&list[i]))
	}
	return out
}

func toBehaviorResponse(b *model.Behavior) dto.BehaviorResponse {
	return dto.BehaviorResponse{
		ID:        b.BehaviorID,
		ChildID:   b.ChildID,
		Date:      b.Date,
		Type:      b.Type,
		Deduction: b.Deduction,
		Notes:     b.Notes,
		CreatedAt: formatTime(b.CreatedAt),
	}
}

func toBehaviorResponses(list []model.Behavior) []dto.BehaviorResponse {
	out := make([]dto.BehaviorResponse, 0, len(list))
	for i := range list {
		out = append(out, toBehaviorResponse(&list[i]))
	}
	return out
}

func vacationDates(days []model.VacationDay) []string {
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, d.Date)
	}
	return out
}
