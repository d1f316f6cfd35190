// Package dto defines the wire shapes of the payments endpoints.
package dto

import (
	"time"

	"payments_backend/internal/feature/payments/domain/entity"
	"payments_backend/internal/shared/dates"
)

// PaymentResponse is the JSON view of a payment. Dates are YYYY-MM-DD.
type PaymentResponse struct {
	ID          uint      `json:"id"`
	CustomerID  uint      `json:"customer_id"`
	Amount      float64   `json:"amount"`
	DueDate     string    `json:"due_date"`
	PaymentDate *string   `json:"payment_date"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	Method      string    `json:"method"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}

// PaymentListItem is a payment row of GET /api/payments.
type PaymentListItem struct {
	PaymentResponse
	CustomerName       string  `json:"customer_name"`
	CustomerNationalID *string `json:"customer_national_id"`
	CustomerPhone      string  `json:"customer_phone"`
}

// HistoryItem is a payment row of GET /api/history/:customer_id.
type HistoryItem struct {
	PaymentResponse
	RegisteredBy *string `json:"registered_by"`
}

// NewPaymentResponse converts p into its JSON view.
func NewPaymentResponse(p *entity.Payment) PaymentResponse {
	r := PaymentResponse{
		ID:          p.ID,
		CustomerID:  p.CustomerID,
		Amount:      p.Amount,
		DueDate:     p.DueDate.Format(dates.DateLayout),
		Status:      p.Status,
		Description: p.Description,
		Method:      p.Method,
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt,
	}
	if p.PaymentDate != nil {
		s := p.PaymentDate.Format(dates.DateLayout)
		r.PaymentDate = &s
	}
	return r
}

func NewPaymentListItems(views []entity.PaymentView) []PaymentListItem {
	out := make([]PaymentListItem, 0, len(views))
	for i := range views {
		v := &views[i]
		out = append(out, PaymentListItem{
			PaymentResponse:    NewPaymentResponse(&v.Payment),
			CustomerName:       v.CustomerName,
			CustomerNationalID: v.CustomerNationalID,
			CustomerPhone:      v.CustomerPhone,
		})
	}
	return out
}

func NewHistoryItems(entries []entity.HistoryEntry) []HistoryItem {
	out := make([]HistoryItem, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		out = append(out, HistoryItem{
			PaymentResponse: NewPaymentResponse(&e.Payment),
			RegisteredBy:    e.RegisteredByName,
		})
	}
	return out
}
