// Package dto defines the wire shapes of the reports. The keys are the ones the
// browser dashboard binds to.
package dto

import (
	"payments_backend/internal/feature/reports/domain/entity"
	"payments_backend/internal/shared/dates"
)

// DashboardResponse keeps the legacy Portuguese key names.
type DashboardResponse struct {
	TotalCustomers         int64   `json:"total_clientes"`
	PendingPayments        int64   `json:"pagamentos_pendentes"`
	OpenAmount             float64 `json:"valor_em_aberto"`
	OverduePayments        int64   `json:"pagamentos_vencidos"`
	ReceivedThisMonth      float64 `json:"valor_recebido_mes"`
	CustomersPaidThisMonth int64   `json:"clientes_pagaram_mes"`
}

type DelinquentResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"nome"`
	Phone       string  `json:"telefone"`
	Email       string  `json:"email"`
	Count       int     `json:"qtd_pendencias"`
	Total       float64 `json:"valor_total"`
	OldestDueAt string  `json:"vencimento_mais_antigo"`
}

type MonthlyPayerResponse struct {
	ID         uint    `json:"id"`
	Name       string  `json:"nome"`
	Phone      string  `json:"telefone"`
	Count      int     `json:"qtd_pagamentos"`
	Total      float64 `json:"valor_total"`
	LastPaidAt string  `json:"ultimo_pagamento"`
}

func NewDashboardResponse(s entity.DashboardStats) DashboardResponse {
	return DashboardResponse{
		TotalCustomers:         s.ActiveCustomers,
		PendingPayments:        s.PendingCount,
		OpenAmount:             s.PendingAmount,
		OverduePayments:        s.OverdueCount,
		ReceivedThisMonth:      s.ReceivedThisMonth,
		CustomersPaidThisMonth: s.CustomersPaidThisMonth,
	}
}

func NewDelinquentResponses(ds []entity.Delinquent) []DelinquentResponse {
	out := make([]DelinquentResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, DelinquentResponse{
			ID:          d.CustomerID,
			Name:        d.Name,
			Phone:       d.Phone,
			Email:       d.Email,
			Count:       d.Count,
			Total:       d.Total,
			OldestDueAt: d.OldestDueAt.Format(dates.DateLayout),
		})
	}
	return out
}

func NewMonthlyPayerResponses(ps []entity.MonthlyPayer) []MonthlyPayerResponse {
	out := make([]MonthlyPayerResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, MonthlyPayerResponse{
			ID:         p.CustomerID,
			Name:       p.Name,
			Phone:      p.Phone,
			Count:      p.Count,
			Total:      p.Total,
			LastPaidAt: p.LastPaidAt.Format(dates.DateLayout),
		})
	}
	return out
}
