package dto

// ── Children ──

// CreateChildRequest add a tracked child
type CreateChildRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// ChildResponse a tracked child
type ChildResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}
