// Package entity defines the domain entities for the payments feature.
package entity

import "time"

// Payment statuses. A pending payment moves to paid or cancelled, both terminal.
const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusCancelled = "cancelled"
)

// DefaultMethod is stored when a payment is settled without a method.
const DefaultMethod = "Not informed"

// ValidStatus reports whether s is a known payment status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusPaid, StatusCancelled:
		return true
	}
	return false
}

// Payment is an amount a customer owes by a due date. DueDate and PaymentDate
// are calendar dates held as midnight UTC.
type Payment struct {
	ID         uint    `gorm:"primaryKey"`
	CustomerID uint    `gorm:"not null;index"`
	Amount     float64 `gorm:"not null"`

	DueDate     time.Time  `gorm:"not null;index"`
	PaymentDate *time.Time `gorm:"index"`
	Status      string     `gorm:"size:20;not null;default:pending;index"`

	Description string `gorm:"type:text"`
	Method      string `gorm:"size:50"`
	Notes       string `gorm:"type:text"`

	// RegisteredByID is the user that created the payment.
	RegisteredByID *uint `gorm:"index"`
	CreatedAt      time.Time
}

// IsPending reports whether the payment is still open.
func (p *Payment) IsPending() bool { return p.Status == StatusPending }

// PaymentView is a payment joined with the customer it belongs to.
type PaymentView struct {
	Payment
	CustomerName       string
	CustomerNationalID *string
	CustomerPhone      string
}

// HistoryEntry is a payment joined with the name of the user that registered it.
type HistoryEntry struct {
	Payment
	RegisteredByName *string
}
