package dto

// CreatePaymentRequest is the body of POST /api/payments. Amount and due date
// are checked by the usecase so their messages stay the same on every route.
type CreatePaymentRequest struct {
	CustomerID  uint    `json:"customer_id" binding:"required"`
	Amount      float64 `json:"amount"`
	DueDate     string  `json:"due_date" binding:"required"`
	Description string  `json:"description"`
	Notes       string  `json:"notes"`
}

// PayRequest is the optional body of POST /api/payments/:id/pay.
type PayRequest struct {
	Method string `json:"method" binding:"max=50"`
}
