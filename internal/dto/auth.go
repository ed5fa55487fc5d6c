package dto

// ── Auth ──

// LoginRequest parent login
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}
