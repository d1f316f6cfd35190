package usecase

import (
	"sort"

	"payments_backend/internal/feature/reports/domain/entity"
)

// GroupDelinquents folds overdue rows into one entry per customer, ordered by
// oldest due date and then by customer id.
func GroupDelinquents(rows []entity.PaymentRow) []entity.Delinquent {
	byCustomer := map[uint]*entity.Delinquent{}
	for _, r := range rows {
		d, ok := byCustomer[r.CustomerID]
		if !ok {
			d = &entity.Delinquent{
				CustomerID:  r.CustomerID,
				Name:        r.Name,
				Phone:       r.Phone,
				Email:       r.Email,
				OldestDueAt: r.DueDate,
			}
			byCustomer[r.CustomerID] = d
		}
		d.Count++
		d.Total += r.Amount
		if r.DueDate.Before(d.OldestDueAt) {
			d.OldestDueAt = r.DueDate
		}
	}

	out := make([]entity.Delinquent, 0, len(byCustomer))
	for _, d := range byCustomer {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].OldestDueAt.Equal(out[j].OldestDueAt) {
			return out[i].OldestDueAt.Before(out[j].OldestDueAt)
		}
		return out[i].CustomerID < out[j].CustomerID
	})
	return out
}

// GroupMonthlyPayers folds paid rows into one entry per customer, ordered by
// name and then by customer id. Rows without a payment date are skipped.
func GroupMonthlyPayers(rows []entity.PaymentRow) []entity.MonthlyPayer {
	byCustomer := map[uint]*entity.MonthlyPayer{}
	for _, r := range rows {
		if r.PaymentDate == nil {
			continue
		}
		p, ok := byCustomer[r.CustomerID]
		if !ok {
			p = &entity.MonthlyPayer{
				CustomerID: r.CustomerID,
				Name:       r.Name,
				Phone:      r.Phone,
				LastPaidAt: *r.PaymentDate,
			}
			byCustomer[r.CustomerID] = p
		}
		p.Count++
		p.Total += r.Amount
		if r.PaymentDate.After(p.LastPaidAt) {
			p.LastPaidAt = *r.PaymentDate
		}
	}

	out := make([]entity.MonthlyPayer, 0, len(byCustomer))
	for _, p := range byCustomer {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].CustomerID < out[j].CustomerID
	})
	return out
}
