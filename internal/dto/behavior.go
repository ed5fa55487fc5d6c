package dto

// ── Behaviors ──

// CreateBehaviorRequest log a behavior. The deduction is fixed server-side.
type CreateBehaviorRequest struct {
	ChildID string `json:"child_id" binding:"required"`
	Date    string `json:"date"     binding:"omitempty,isodate"`
	Type    string `json:"type"     binding:"required,max=100"`
	Notes   string `json:"notes"    binding:"max=500"`
}

// BehaviorListRequest behavior query
type BehaviorListRequest struct {
	DateRangeRequest
	ChildID string `form:"child_id"`
}

// BehaviorResponse a stored behavior
type BehaviorResponse struct {
	ID        string `json:"id"`
	ChildID   string `json:"child_id"`
	Date      string `json:"date"`
	Type      string `json:"type"`
	Deduction *int   `json:"deduction"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"created_at"`
}
