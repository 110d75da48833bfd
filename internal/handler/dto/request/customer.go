package request

import "rental-admin/internal/domain/customer"

type CustomerRequest struct {
	Name  string `json:"name" binding:"required,max=255"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"max=20"`
	Notes string `json:"notes" binding:"max=1000"`
}

func (r *CustomerRequest) ToParams() customer.Params {
	return customer.Params{Name: r.Name, Email: r.Email, Phone: r.Phone, Notes: r.Notes}
}
