package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	auditentity "payments_backend/internal/feature/audit/domain/entity"
	"payments_backend/internal/feature/customers/domain/entity"
)

// CustomerRepository abstracts the persistence of customers.
type CustomerRepository interface {
	// Create returns ErrNationalIDTaken on a unique violation.
	Create(ctx context.Context, c *entity.Customer) error
	// Update saves every column. It returns ErrNationalIDTaken on a unique violation.
	Update(ctx context.Context, c *entity.Customer) error
	// FindByID returns the customer regardless of its active flag.
	FindByID(ctx context.Context, id uint) (*entity.Customer, error)
	// FindByNationalID returns the customer holding nationalID, active or not.
	FindByNationalID(ctx context.Context, nationalID string) (*entity.Customer, error)
	// ListActive returns active customers ordered by name. A non-empty search
	// matches name or national ID, case-insensitively.
	ListActive(ctx context.Context, search string) ([]entity.Customer, error)
}

// AuditRecorder appends an entry to the audit log.
type AuditRecorder interface {
	Record(ctx context.Context, userID uint, action, description string)
}

// Transactor runs fn in one unit of work.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// CustomerInput carries the editable fields of a customer.
type CustomerInput struct {
	Name       string
	Email      string
	Phone      string
	NationalID string
	Address    string
	Notes      string
}

type customerUsecase struct {
	customers CustomerRepository
	tx        Transactor
	audit     AuditRecorder
}

// NewCustomerUsecase returns the customer usecase.
func NewCustomerUsecase(customers CustomerRepository, tx Transactor, audit AuditRecorder) *customerUsecase {
	return &customerUsecase{customers: customers, tx: tx, audit: audit}
}

// List returns active customers whose name or national ID contains search.
func (u *customerUsecase) List(ctx context.Context, search string) ([]entity.Customer, error) {
	customers, err := u.customers.ListActive(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

func (u *customerUsecase) Get(ctx context.Context, id uint) (*entity.Customer, error) {
	return u.customers.FindByID(ctx, id)
}

// Create registers a customer. A national ID must not be registered already.
func (u *customerUsecase) Create(ctx context.Context, actorID uint, in CustomerInput) (*entity.Customer, error) {
	c := &entity.Customer{Active: true}
	if err := apply(c, in); err != nil {
		return nil, err
	}

	err := u.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := u.ensureNationalIDFree(ctx, c.NationalID, 0); err != nil {
			return err
		}
		return u.customers.Create(ctx, c)
	})
	if err != nil {
		return nil, err
	}

	u.audit.Record(ctx, actorID, auditentity.ActionCreateCustomer, fmt.Sprintf("Customer %s created", c.Name))
	return c, nil
}

// Update replaces the editable fields of a customer.
func (u *customerUsecase) Update(ctx context.Context, actorID, id uint, in CustomerInput) (*entity.Customer, error) {
	var c *entity.Customer
	err := u.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := u.customers.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := apply(current, in); err != nil {
			return err
		}
		if err := u.ensureNationalIDFree(ctx, current.NationalID, id); err != nil {
			return err
		}
		c = current
		return u.customers.Update(ctx, current)
	})
	if err != nil {
		return nil, err
	}

	u.audit.Record(ctx, actorID, auditentity.ActionUpdateCustomer, fmt.Sprintf("Customer %s updated", c.Name))
	return c, nil
}

// Deactivate soft-deletes a customer. Its payments are kept.
func (u *customerUsecase) Deactivate(ctx context.Context, actorID, id uint) error {
	var c *entity.Customer
	err := u.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := u.customers.FindByID(ctx, id)
		if err != nil {
			return err
		}
		current.Active = false
		c = current
		return u.customers.Update(ctx, current)
	})
	if err != nil {
		return err
	}

	u.audit.Record(ctx, actorID, auditentity.ActionDeleteCustomer, fmt.Sprintf("Customer %s deactivated", c.Name))
	return nil
}

// ensureNationalIDFree fails when nationalID belongs to a customer other than selfID.
func (u *customerUsecase) ensureNationalIDFree(ctx context.Context, nationalID *string, selfID uint) error {
	if nationalID == nil {
		return nil
	}
	holder, err := u.customers.FindByNationalID(ctx, *nationalID)
	switch {
	case errors.Is(err, ErrCustomerNotFound):
		return nil
	case err != nil:
		return err
	case holder.ID != selfID:
		return ErrNationalIDTaken
	default:
		return nil
	}
}

func apply(c *entity.Customer, in CustomerInput) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return ErrNameRequired
	}
	c.Name = name
	c.Email = strings.TrimSpace(in.Email)
	c.Phone = strings.TrimSpace(in.Phone)
	c.NationalID = optional(in.NationalID)
	c.Address = in.Address
	c.Notes = in.Notes
	return nil
}

// optional maps a blank string to NULL.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
