package dto

// ── Export ──

// ExportRequest export filter
type ExportRequest struct {
	DateRangeRequest
	ChildID string `form:"child_id"`
}
