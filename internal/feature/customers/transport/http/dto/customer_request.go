package dto

// CustomerRequest is the body of POST /api/customers and PUT /api/customers/:id.
type CustomerRequest struct {
	Name       string `json:"name" binding:"required,max=100"`
	Email      string `json:"email" binding:"omitempty,email,max=120"`
	Phone      string `json:"phone" binding:"max=20"`
	NationalID string `json:"national_id" binding:"max=20"`
	Address    string `json:"address"`
	Notes      string `json:"notes"`
}
