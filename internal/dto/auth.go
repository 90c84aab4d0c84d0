package dto

import "time"

// LoginRequest carries the shared admin password.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the admin session token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
