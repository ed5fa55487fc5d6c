package dto

// ── Activities ──

// CreateActivityRequest log an activity. Date defaults to today.
type CreateActivityRequest struct {
	ChildID     string `json:"child_id"    binding:"required"`
	Date        string `json:"date"        binding:"omitempty,isodate"`
	Type        string `json:"type"        binding:"required,activitytype"`
	Category    string `json:"category"    binding:"required,max=100"`
	Description string `json:"description" binding:"required,max=500"`
	Duration    *int   `json:"duration"    binding:"omitempty,min=0,max=1440"`
}

// UpdateActivityRequest edit an activity; Version must match the stored row
type UpdateActivityRequest struct {
	Version     int     `json:"version"     binding:"required,min=1"`
	Category    *string `json:"category"    binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Duration    *int    `json:"duration"    binding:"omitempty,min=0,max=1440"`
}

// ToggleCompletedRequest flip the completed flag
type ToggleCompletedRequest struct {
	Version int `json:"version" binding:"required,min=1"`
}

// ActivityListRequest activity query
type ActivityListRequest struct {
	PaginationRequest
	DateRangeRequest
	ChildID string `form:"child_id"`
	Type    string `form:"type"     binding:"omitempty,activitytype"`
}

// ActivityResponse a stored activity
type ActivityResponse struct {
	ID          string `json:"id"`
	ChildID     string `json:"child_id"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Duration    *int   `json:"duration"`
	Completed   bool   `json:"completed"`
	Version     int    `json:"version"`
	CreatedAt   string `json:"created_at"`
}
