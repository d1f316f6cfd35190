// Package dto defines the wire shapes of the customers endpoints.
package dto

import (
	"time"

	"payments_backend/internal/feature/customers/domain/entity"
	reportentity "payments_backend/internal/feature/reports/domain/entity"
)

// CustomerResponse is the JSON view of a customer.
type CustomerResponse struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	NationalID *string   `json:"national_id"`
	Address    string    `json:"address"`
	Notes      string    `json:"notes"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

// CustomerStatsResponse summarizes the payments of one customer.
type CustomerStatsResponse struct {
	TotalPayments   int64   `json:"total_payments"`
	PaidPayments    int64   `json:"paid_payments"`
	PendingPayments int64   `json:"pending_payments"`
	PendingAmount   float64 `json:"pending_amount"`
}

// CustomerDetailResponse is a customer together with its payment statistics.
type CustomerDetailResponse struct {
	CustomerResponse
	Stats CustomerStatsResponse `json:"stats"`
}

// NewCustomerResponse converts c into its JSON view.
func NewCustomerResponse(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		NationalID: c.NationalID,
		Address:    c.Address,
		Notes:      c.Notes,
		Active:     c.Active,
		CreatedAt:  c.CreatedAt,
	}
}

func NewCustomerResponses(customers []entity.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		out = append(out, NewCustomerResponse(&customers[i]))
	}
	return out
}

// NewCustomerDetailResponse combines a customer with its payment stats.
func NewCustomerDetailResponse(c *entity.Customer, s reportentity.CustomerStats) CustomerDetailResponse {
	return CustomerDetailResponse{
		CustomerResponse: NewCustomerResponse(c),
		Stats: CustomerStatsResponse{
			TotalPayments:   s.TotalPayments,
			PaidPayments:    s.PaidPayments,
			PendingPayments: s.PendingPayments,
			PendingAmount:   s.PendingAmount,
		},
	}
}
