package response

import "rental-admin/internal/usecase/queries"

type CustomerResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

func NewCustomer(v *queries.CustomerView) (*CustomerResponse, error) {
	res, err := copyView[CustomerResponse](v)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func NewCustomerPage(items []*queries.CustomerView, next *queries.Cursor) (*Page[CustomerResponse], error) {
	return newPage[*queries.CustomerView, CustomerResponse](items, next)
}
