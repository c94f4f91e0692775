package payment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/booth33/studio-backend/notify"
	nf_mocks "github.com/booth33/studio-backend/notify/mocks"
	"github.com/booth33/studio-backend/payment"
	pay_mocks "github.com/booth33/studio-backend/payment/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	repo      *pay_mocks.MockPaymentRepository
	processor *pay_mocks.MockProcessor
	publisher *nf_mocks.MockPublisher
	service   *payment.Service
	ctx       context.Context
}

func newTestDeps(t *testing.T) (*gomock.Controller, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := pay_mocks.NewMockPaymentRepository(ctrl)
	processor := pay_mocks.NewMockProcessor(ctrl)
	publisher := nf_mocks.NewMockPublisher(ctrl)
	svc := payment.NewService(repo, processor, publisher)

	return ctrl, testDeps{
		repo: repo, processor: processor, publisher: publisher, service: svc, ctx: context.Background(),
	}
}

func TestCharge(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.processor.EXPECT().Process(deps.ctx, 60.0, "card-1").Return(nil).Times(1)
		deps.repo.EXPECT().InsertTransaction(deps.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, tx payment.Transaction) (payment.Transaction, error) {
				require.NotEmpty(t, tx.ID)
				require.Equal(t, payment.StatusCompleted, tx.Status)
				require.Equal(t, 60.0, tx.Amount)
				require.Equal(t, "booking-1", tx.BookingID)
				return tx, nil
			}).Times(1)
		deps.publisher.EXPECT().PublishJSON(deps.ctx, notify.RKPaymentCaptured, gomock.Any()).Return(nil).Times(1)

		tx, err := deps.service.Charge(deps.ctx, "user1", 60, "booking-1", "card-1", "studio booking")

		require.Nil(t, err)
		require.Equal(t, payment.StatusCompleted, tx.Status)
	})

	t.Run("processor declines", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.processor.EXPECT().Process(deps.ctx, 60.0, "card-1").Return(payment.ErrPaymentFailed).Times(1)
		deps.repo.EXPECT().InsertTransaction(deps.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, tx payment.Transaction) (payment.Transaction, error) {
				require.Equal(t, payment.StatusFailed, tx.Status)
				return tx, nil
			}).Times(1)
		deps.publisher.EXPECT().PublishJSON(deps.ctx, notify.RKPaymentFailed, gomock.Any()).Return(nil).Times(1)

		tx, err := deps.service.Charge(deps.ctx, "user1", 60, "booking-1", "card-1", "studio booking")

		require.ErrorIs(t, err, payment.ErrPaymentFailed)
		require.Equal(t, payment.StatusFailed, tx.Status)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.processor.EXPECT().Process(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		deps.repo.EXPECT().InsertTransaction(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.Charge(deps.ctx, "user1", 0, "booking-1", "card-1", "studio booking")

		require.ErrorIs(t, err, payment.ErrInvalidAmount)
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.processor.EXPECT().Process(deps.ctx, 60.0, "card-1").Return(nil).Times(1)
		deps.repo.EXPECT().InsertTransaction(deps.ctx, gomock.Any()).Return(payment.Transaction{}, errors.New("repo error")).Times(1)
		deps.publisher.EXPECT().PublishJSON(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.Charge(deps.ctx, "user1", 60, "booking-1", "card-1", "studio booking")

		require.Error(t, err)
	})
}

func TestRefund(t *testing.T) {
	completed := payment.Transaction{
		ID:              "tx1",
		UserID:          "user1",
		BookingID:       "booking-1",
		PaymentMethodID: "card-1",
		Amount:          120,
		Status:          payment.StatusCompleted,
		Date:            time.Now(),
	}

	t.Run("partial refund stays completed", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetTransactionByID(deps.ctx, "tx1").Return(completed, nil).Times(1)
		deps.repo.EXPECT().UpdateRefund(deps.ctx, "tx1", 50.0, payment.StatusCompleted, gomock.Any()).Return(nil).Times(1)
		deps.publisher.EXPECT().PublishJSON(deps.ctx, notify.RKPaymentRefunded, gomock.Any()).Return(nil).Times(1)

		tx, err := deps.service.Refund(deps.ctx, "tx1", 50)

		require.Nil(t, err)
		require.Equal(t, payment.StatusCompleted, tx.Status)
		require.Equal(t, 50.0, tx.RefundedAmount)
	})

	t.Run("full refund flips status", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetTransactionByID(deps.ctx, "tx1").Return(completed, nil).Times(1)
		deps.repo.EXPECT().UpdateRefund(deps.ctx, "tx1", 120.0, payment.StatusRefunded, gomock.Any()).Return(nil).Times(1)
		deps.publisher.EXPECT().PublishJSON(deps.ctx, notify.RKPaymentRefunded, gomock.Any()).Return(nil).Times(1)

		tx, err := deps.service.Refund(deps.ctx, "tx1", 120)

		require.Nil(t, err)
		require.Equal(t, payment.StatusRefunded, tx.Status)
		require.Equal(t, 120.0, tx.RefundedAmount)
	})

	t.Run("partial refunds summing to the full amount flip the status", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		current := completed
		current.Amount = 100

		deps.repo.EXPECT().GetTransactionByID(deps.ctx, "tx1").
			DoAndReturn(func(context.Context, string) (payment.Transaction, error) {
				return current, nil
			}).Times(3)
		deps.repo.EXPECT().UpdateRefund(deps.ctx, "tx1", gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, refunded float64, status payment.Status, _ time.Time) error {
				current.RefundedAmount = refunded
				current.Status = status
				return nil
			}).Times(3)
		deps.publisher.EXPECT().PublishJSON(deps.ctx, notify.RKPaymentRefunded, gomock.Any()).Return(nil).Times(3)

		for _, amount := range []float64{33.33, 33.33, 33.34} {
			_, err := deps.service.Refund(deps.ctx, "tx1", amount)
			require.Nil(t, err)
		}

		require.Equal(t, payment.StatusRefunded, current.Status)
		require.Equal(t, 100.0, current.RefundedAmount)
	})

	t.Run("refund exceeds available", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		partiallyRefunded := completed
		partiallyRefunded.RefundedAmount = 100

		deps.repo.EXPECT().GetTransactionByID(deps.ctx, "tx1").Return(partiallyRefunded, nil).Times(1)
		deps.repo.EXPECT().UpdateRefund(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.Refund(deps.ctx, "tx1", 30)

		require.ErrorIs(t, err, payment.ErrRefundExceedsAvailable)
	})

	t.Run("failed transaction not refundable", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		failed := completed
		failed.Status = payment.StatusFailed

		deps.repo.EXPECT().GetTransactionByID(deps.ctx, "tx1").Return(failed, nil).Times(1)
		deps.repo.EXPECT().UpdateRefund(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.Refund(deps.ctx, "tx1", 30)

		require.ErrorIs(t, err, payment.ErrInvalidTransactionState)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetTransactionByID(deps.ctx, "tx1").Return(payment.Transaction{}, payment.ErrTransactionNotFound).Times(1)

		_, err := deps.service.Refund(deps.ctx, "tx1", 30)

		require.ErrorIs(t, err, payment.ErrTransactionNotFound)
	})
}

func TestMockProcessor(t *testing.T) {
	t.Run("always succeeds at zero failure rate", func(t *testing.T) {
		p := payment.NewMockProcessor(0, 0, 1)

		for i := 0; i < 20; i++ {
			require.Nil(t, p.Process(context.Background(), 60, "card-1"))
		}
	})

	t.Run("always fails at full failure rate", func(t *testing.T) {
		p := payment.NewMockProcessor(0, 1, 1)

		require.ErrorIs(t, p.Process(context.Background(), 60, "card-1"), payment.ErrPaymentFailed)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		p := payment.NewMockProcessor(0, 0, 1)

		require.ErrorIs(t, p.Process(context.Background(), 0, "card-1"), payment.ErrInvalidAmount)
	})

	t.Run("honours context cancellation", func(t *testing.T) {
		p := payment.NewMockProcessor(time.Minute, 0, 1)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		require.ErrorIs(t, p.Process(ctx, 60, "card-1"), context.Canceled)
	})
}
