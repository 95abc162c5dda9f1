//go:build unit || e2e

package builder

import (
	reqdto "booking-engine/internal/handler/dto/request"
	"booking-engine/internal/usecase/commands"
)

type AuthBuilder struct {
	Email    string
	Password string
	FullName string
	Phone    string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "test@example.com",
		Password: "password123",
		FullName: "Test User",
		Phone:    "13800138000",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:    a.Email,
		Password: a.Password,
		FullName: a.FullName,
		Phone:    a.Phone,
	}
}

func (a *AuthBuilder) BuildLoginInput() commands.LoginInput {
	return commands.LoginInput{Email: a.Email, Password: a.Password}
}

func (a *AuthBuilder) BuildRegisterInput() commands.RegisterInput {
	return commands.RegisterInput{
		Email:    a.Email,
		Password: a.Password,
		FullName: a.FullName,
		Phone:    a.Phone,
	}
}

func (a *AuthBuilder) WithEmail(email string) *AuthBuilder {
	a.Email = email
	return a
}

func (a *AuthBuilder) WithPhone(phone string) *AuthBuilder {
	a.Phone = phone
	return a
}
