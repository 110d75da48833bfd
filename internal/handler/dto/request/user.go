package request

import "rental-admin/internal/usecase/commands"

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,role"`
}

func (r *CreateUserRequest) ToCommand() commands.CreateUserRequest {
	return commands.CreateUserRequest{Email: r.Email, Password: r.Password, Role: r.Role}
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required,role"`
}
