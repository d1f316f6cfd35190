// Package entity defines the read models produced by the reporting engine.
package entity

import "time"

// DashboardStats is the operational snapshot shown on the home screen.
type DashboardStats struct {
	ActiveCustomers        int64
	PendingCount           int64
	PendingAmount          float64
	OverdueCount           int64
	ReceivedThisMonth      float64
	CustomersPaidThisMonth int64
}

// Delinquent aggregates the overdue pending payments of one customer.
type Delinquent struct {
	CustomerID  uint
	Name        string
	Phone       string
	Email       string
	Count       int
	Total       float64
	OldestDueAt time.Time
}

// MonthlyPayer aggregates the payments one customer settled in a month.
type MonthlyPayer struct {
	CustomerID uint
	Name       string
	Phone      string
	Count      int
	Total      float64
	LastPaidAt time.Time
}

// CustomerStats summarises the payments of a single customer.
type CustomerStats struct {
	TotalPayments   int64
	PaidPayments    int64
	PendingPayments int64
	PendingAmount   float64
}

// PaymentRow is a payment flattened with its customer contact, the input of
// the delinquency and monthly-payer groupings.
type PaymentRow struct {
	CustomerID  uint
	Name        string
	Phone       string
	Email       string
	Amount      float64
	DueDate     time.Time
	PaymentDate *time.Time
}
