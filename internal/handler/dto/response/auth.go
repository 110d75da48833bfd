package response

import "rental-admin/internal/usecase/queries"

type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
	LastLogin *int64 `json:"last_login,omitempty"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

func NewUser(v *queries.UserView) (*UserResponse, error) {
	res, err := copyView[UserResponse](v)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func NewUserPage(items []*queries.UserView, next *queries.Cursor) (*Page[UserResponse], error) {
	return newPage[*queries.UserView, UserResponse](items, next)
}

// LoginResponse echoes the access token for clients that cannot use cookies.
type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}
