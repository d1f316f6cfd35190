// Package entity defines the domain entities for the audit feature.
package entity

import "time"

// Action codes written by the business operations.
const (
	ActionLogin          = "LOGIN"
	ActionCreateUser     = "CREATE_USER"
	ActionUpdateUser     = "UPDATE_USER"
	ActionDeleteUser     = "DELETE_USER"
	ActionCreateCustomer = "CREATE_CUSTOMER"
	ActionUpdateCustomer = "UPDATE_CUSTOMER"
	ActionDeleteCustomer = "DELETE_CUSTOMER"
	ActionCreatePayment  = "CREATE_PAYMENT"
	ActionSettlePayment  = "SETTLE_PAYMENT"
	ActionCancelPayment  = "CANCEL_PAYMENT"
	ActionDeletePayment  = "DELETE_PAYMENT"
)

// Entry is one append-only audit record. It is never updated or deleted.
type Entry struct {
	ID uint `gorm:"primaryKey"`

	// UserID is the acting user.
	UserID uint `gorm:"not null;index"`

	Action      string `gorm:"size:50;not null;index"`
	Description string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null;index"`
}

func (Entry) TableName() string { return "audit_entries" }

// EntryView is an Entry joined with the acting user's display name.
type EntryView struct {
	ID          uint
	UserID      uint
	UserName    string
	Action      string
	Description string
	CreatedAt   time.Time
}
