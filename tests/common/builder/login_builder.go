//go:build unit || e2e

package builder

import (
	reqdto "rental-admin/internal/handler/dto/request"
)

// LoginBuilder defaults to the credentials of NewUserBuilder's user.
type LoginBuilder struct {
	Email        string
	Password     string
	RefreshToken string
}

func NewLoginBuilder() *LoginBuilder {
	return &LoginBuilder{
		Email:    NewUserBuilder().Email,
		Password: "password123",
	}
}

func (l *LoginBuilder) WithEmail(email string) *LoginBuilder {
	l.Email = email
	return l
}

func (l *LoginBuilder) WithPassword(password string) *LoginBuilder {
	l.Password = password
	return l
}

func (l *LoginBuilder) WithRefreshToken(token string) *LoginBuilder {
	l.RefreshToken = token
	return l
}

func (l *LoginBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{Email: l.Email, Password: l.Password}
}

func (l *LoginBuilder) BuildRefreshDTO() reqdto.RefreshRequest {
	return reqdto.RefreshRequest{RefreshToken: l.RefreshToken}
}
