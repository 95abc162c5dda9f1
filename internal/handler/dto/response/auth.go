package response

import (
	"booking-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
}

type AuthResponse struct {
	AccessToken string      `json:"access_token"`
	User        UserSummary `json:"user"`
}

func FromAuthResult(r *commands.AuthResult) *AuthResponse {
	return &AuthResponse{
		AccessToken: r.TokenPair.AccessToken,
		User: UserSummary{
			ID:       r.UserID,
			Email:    r.Email,
			FullName: r.FullName,
			Role:     r.Role.String(),
		},
	}
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

type VerificationResponse struct {
	Verified bool `json:"verified"`
}
