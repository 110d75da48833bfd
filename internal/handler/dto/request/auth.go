package request

import "rental-admin/internal/usecase/commands"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToCommand() commands.LoginRequest {
	return commands.LoginRequest{Email: r.Email, Password: r.Password}
}

// RefreshRequest is optional on the wire; the refresh cookie is preferred.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
