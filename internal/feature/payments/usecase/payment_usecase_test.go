package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	auditentity "payments_backend/internal/feature/audit/domain/entity"
	"payments_backend/internal/feature/payments/domain/entity"
	"payments_backend/internal/shared/apperr"
	"payments_backend/internal/shared/dates"
)

// fixedClock returns a clock at 2024-05-15 10:00 UTC.
func fixedClock() dates.Clock {
	return dates.NewClock(func() time.Time {
		return time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	}, time.UTC)
}

func newUsecase(repo PaymentRepository, audit AuditRecorder) *paymentUsecase {
	return NewPaymentUsecase(repo, stubCustomers{known: map[uint]bool{7: true}}, passthroughTx{}, audit, fixedClock())
}

func TestPaymentUsecase_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       CreateInput
		wantErr  error
		wantKind apperr.Kind
	}{
		{name: "created", in: CreateInput{CustomerID: 7, Amount: 100, DueDate: "2024-05-14", Description: " Mensalidade "}},
		{name: "zero amount", in: CreateInput{CustomerID: 7, Amount: 0, DueDate: "2024-05-14"}, wantErr: ErrInvalidAmount},
		{name: "negative amount", in: CreateInput{CustomerID: 7, Amount: -5, DueDate: "2024-05-14"}, wantErr: ErrInvalidAmount},
		{name: "unknown customer", in: CreateInput{CustomerID: 8, Amount: 100, DueDate: "2024-05-14"}, wantErr: ErrCustomerNotFound},
		{name: "bad due date", in: CreateInput{CustomerID: 7, Amount: 100, DueDate: "14/05/2024"}, wantKind: apperr.KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var created *entity.Payment
			repo := &mockPaymentRepository{CreateFunc: func(ctx context.Context, p *entity.Payment) error {
				p.ID = 30
				created = p
				return nil
			}}
			audit := &recordingAudit{}

			got, err := newUsecase(repo, audit).Create(context.Background(), 2, tt.in)

			if tt.wantErr != nil || tt.wantKind != apperr.KindInternal {
				require.Error(t, err)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.Equal(t, tt.wantKind, apperr.KindOf(err))
				}
				assert.Nil(t, created, "nothing is persisted on rejection")
				assert.Empty(t, audit.calls)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entity.StatusPending, got.Status)
			assert.Equal(t, "Mensalidade", got.Description)
			assert.True(t, time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC).Equal(got.DueDate))
			require.NotNil(t, got.RegisteredByID)
			assert.Equal(t, uint(2), *got.RegisteredByID)
			assert.Nil(t, got.PaymentDate)
			require.Len(t, audit.calls, 1)
			assert.Equal(t, auditentity.ActionCreatePayment, audit.calls[0].Action)
			assert.Equal(t, "Payment #30 of 100.00 created for customer #7", audit.calls[0].Description)
		})
	}
}

func TestPaymentUsecase_List(t *testing.T) {
	t.Parallel()

	t.Run("month becomes date range", func(t *testing.T) {
		t.Parallel()
		var got ListFilter
		repo := &mockPaymentRepository{ListFunc: func(ctx context.Context, f ListFilter) ([]entity.PaymentView, error) {
			got = f
			return nil, nil
		}}

		_, err := newUsecase(repo, &recordingAudit{}).List(context.Background(), ListInput{CustomerID: 7, Status: "paid", Month: "2024-02"})

		require.NoError(t, err)
		assert.Equal(t, uint(7), got.CustomerID)
		assert.Equal(t, "paid", got.Status)
		require.NotNil(t, got.PaidIn)
		assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), got.PaidIn.Start)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got.PaidIn.End)
	})

	t.Run("no filters", func(t *testing.T) {
		t.Parallel()
		var got ListFilter
		repo := &mockPaymentRepository{ListFunc: func(ctx context.Context, f ListFilter) ([]entity.PaymentView, error) {
			got = f
			return nil, nil
		}}

		_, err := newUsecase(repo, &recordingAudit{}).List(context.Background(), ListInput{})

		require.NoError(t, err)
		assert.Equal(t, ListFilter{}, got)
	})

	t.Run("invalid status", func(t *testing.T) {
		t.Parallel()
		_, err := newUsecase(&mockPaymentRepository{}, &recordingAudit{}).List(context.Background(), ListInput{Status: "pendente"})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("invalid month", func(t *testing.T) {
		t.Parallel()
		_, err := newUsecase(&mockPaymentRepository{}, &recordingAudit{}).List(context.Background(), ListInput{Month: "2024-13"})
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})
}

func repoWith(p *entity.Payment, saved **entity.Payment) *mockPaymentRepository {
	return &mockPaymentRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.Payment, error) {
			if id != p.ID {
				return nil, ErrPaymentNotFound
			}
			cp := *p
			return &cp, nil
		},
		UpdateFunc: func(ctx context.Context, u *entity.Payment) error {
			*saved = u
			return nil
		},
	}
}

func TestPaymentUsecase_Pay(t *testing.T) {
	t.Parallel()

	earlier := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name       string
		payment    entity.Payment
		id         uint
		method     string
		wantErr    error
		wantMethod string
	}{
		{name: "pending with method", payment: entity.Payment{ID: 1, Status: entity.StatusPending}, id: 1, method: "pix", wantMethod: "pix"},
		{name: "default method", payment: entity.Payment{ID: 1, Status: entity.StatusPending}, id: 1, method: "  ", wantMethod: entity.DefaultMethod},
		{name: "already paid is stamped again", payment: entity.Payment{ID: 1, Status: entity.StatusPaid, PaymentDate: &earlier, Method: "cash"}, id: 1, method: "card", wantMethod: "card"},
		{name: "cancelled", payment: entity.Payment{ID: 1, Status: entity.StatusCancelled}, id: 1, method: "pix", wantErr: ErrCancelledSettle},
		{name: "unknown", payment: entity.Payment{ID: 1, Status: entity.StatusPending}, id: 2, wantErr: ErrPaymentNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var saved *entity.Payment
			audit := &recordingAudit{}

			got, err := newUsecase(repoWith(&tt.payment, &saved), audit).Pay(context.Background(), 3, tt.id, tt.method)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, saved)
				assert.Empty(t, audit.calls)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, saved)
			assert.Equal(t, entity.StatusPaid, got.Status)
			assert.Equal(t, tt.wantMethod, got.Method)
			require.NotNil(t, got.PaymentDate)
			assert.Equal(t, time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC), *got.PaymentDate)
			require.Len(t, audit.calls, 1)
			assert.Equal(t, auditentity.ActionSettlePayment, audit.calls[0].Action)
		})
	}
}

func TestPaymentUsecase_Pay_LastWriteWins(t *testing.T) {
	t.Parallel()

	stored := entity.Payment{ID: 5, CustomerID: 7, Amount: 80, Status: entity.StatusPending}
	repo := &mockPaymentRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.Payment, error) {
			p := stored
			return &p, nil
		},
		UpdateFunc: func(ctx context.Context, p *entity.Payment) error {
			stored = *p
			return nil
		},
	}
	audit := &recordingAudit{}
	nextDay := dates.NewClock(func() time.Time {
		return time.Date(2024, 5, 16, 9, 0, 0, 0, time.UTC)
	}, time.UTC)
	first := NewPaymentUsecase(repo, stubCustomers{}, passthroughTx{}, audit, fixedClock())
	second := NewPaymentUsecase(repo, stubCustomers{}, passthroughTx{}, audit, nextDay)

	_, err := first.Pay(context.Background(), 2, 5, "pix")
	require.NoError(t, err)
	_, err = second.Pay(context.Background(), 3, 5, "cash")
	require.NoError(t, err)

	assert.Equal(t, entity.StatusPaid, stored.Status)
	assert.Equal(t, "cash", stored.Method)
	require.NotNil(t, stored.PaymentDate)
	assert.Equal(t, time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC), *stored.PaymentDate)
	require.Len(t, audit.calls, 2)
	assert.Equal(t, auditentity.ActionSettlePayment, audit.calls[1].Action)
}

func TestPaymentUsecase_Cancel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    string
		wantErr   error
		wantSaved bool
		wantAudit bool
	}{
		{name: "pending", status: entity.StatusPending, wantSaved: true, wantAudit: true},
		{name: "already cancelled is a no-op", status: entity.StatusCancelled},
		{name: "paid", status: entity.StatusPaid, wantErr: ErrPaidCancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var saved *entity.Payment
			audit := &recordingAudit{}
			p := entity.Payment{ID: 4, Status: tt.status}

			got, err := newUsecase(repoWith(&p, &saved), audit).Cancel(context.Background(), 3, 4)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entity.StatusCancelled, got.Status)
			assert.Equal(t, tt.wantSaved, saved != nil)
			assert.Equal(t, tt.wantAudit, len(audit.calls) == 1)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()
		_, err := newUsecase(&mockPaymentRepository{}, &recordingAudit{}).Cancel(context.Background(), 3, 99)
		assert.ErrorIs(t, err, ErrPaymentNotFound)
	})
}

func TestPaymentUsecase_Delete(t *testing.T) {
	t.Parallel()

	t.Run("deleted", func(t *testing.T) {
		t.Parallel()
		var deleted uint
		repo := &mockPaymentRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Payment, error) {
				return &entity.Payment{ID: id, CustomerID: 7}, nil
			},
			DeleteFunc: func(ctx context.Context, id uint) error {
				deleted = id
				return nil
			},
		}
		audit := &recordingAudit{}

		require.NoError(t, newUsecase(repo, audit).Delete(context.Background(), 3, 5))

		assert.Equal(t, uint(5), deleted)
		require.Len(t, audit.calls, 1)
		assert.Equal(t, auditCall{UserID: 3, Action: auditentity.ActionDeletePayment, Description: "Payment #5 of customer #7 deleted"}, audit.calls[0])
	})

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()
		audit := &recordingAudit{}
		err := newUsecase(&mockPaymentRepository{}, audit).Delete(context.Background(), 3, 5)
		assert.ErrorIs(t, err, ErrPaymentNotFound)
		assert.Empty(t, audit.calls)
	})
}
