// Package entity defines the domain entities for the customers feature.
package entity

import "time"

// Customer is a payer tracked by the back office. Customers are deactivated,
// never deleted, so their payment history stays resolvable.
type Customer struct {
	ID uint `gorm:"primaryKey"`

	Name  string `gorm:"size:100;not null;index"`
	Email string `gorm:"size:120"`
	Phone string `gorm:"size:20"`

	// NationalID is optional. When set it is unique across all customers.
	NationalID *string `gorm:"size:20;uniqueIndex"`

	Address string `gorm:"type:text"`
	Notes   string `gorm:"type:text"`

	Active    bool `gorm:"not null;default:true;index"`
	CreatedAt time.Time
}
