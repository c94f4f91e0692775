package notify_test

import (
	"context"
	"encoding/json"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/booth33/studio-backend/notify"
	"github.com/booth33/studio-backend/notify/mocks"
)

func delivery(t *testing.T, key string, payload any) amqp.Delivery {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	return amqp.Delivery{RoutingKey: key, Body: body}
}

func TestHandleDelivery(t *testing.T) {
	ctx := context.Background()

	newConsumer := func(t *testing.T) (*notify.Consumer, *mocks.MockNotifier) {
		notifier := mocks.NewMockNotifier(gomock.NewController(t))
		return notify.NewConsumer(notify.ConsumerConfig{}, notifier), notifier
	}

	t.Run("booking confirmed notifies the owner", func(t *testing.T) {
		consumer, notifier := newConsumer(t)

		notifier.EXPECT().
			Notify(ctx, "user1", "booking", "Booking Confirmed", gomock.Any(),
				map[string]any{"bookingId": "booking1"}).
			Return(nil)

		err := consumer.HandleDelivery(ctx, delivery(t, notify.RKBookingConfirmed, notify.BookingEvent{
			BookingID: "booking1",
			UserID:    "user1",
			Date:      "2026-09-10",
			TimeSlot:  "2:00 PM",
		}))

		require.NoError(t, err)
	})

	t.Run("cancellation reason lands in the message", func(t *testing.T) {
		consumer, notifier := newConsumer(t)

		notifier.EXPECT().
			Notify(ctx, "user1", "booking", "Booking Cancelled",
				gomock.Cond(func(x any) bool {
					message, ok := x.(string)
					return ok && message == "Your session on 2026-09-10 at 2:00 PM was cancelled. Reason: double booked"
				}),
				gomock.Any()).
			Return(nil)

		err := consumer.HandleDelivery(ctx, delivery(t, notify.RKBookingCancelled, notify.BookingEvent{
			BookingID: "booking1",
			UserID:    "user1",
			Date:      "2026-09-10",
			TimeSlot:  "2:00 PM",
			Reason:    "double booked",
		}))

		require.NoError(t, err)
	})

	t.Run("payment refund carries the amount", func(t *testing.T) {
		consumer, notifier := newConsumer(t)

		notifier.EXPECT().
			Notify(ctx, "user1", "payment", "Refund Issued",
				"A refund of $50.00 was issued to your payment method.",
				map[string]any{"transactionId": "tx1"}).
			Return(nil)

		err := consumer.HandleDelivery(ctx, delivery(t, notify.RKPaymentRefunded, notify.PaymentEvent{
			TransactionID: "tx1",
			UserID:        "user1",
			Amount:        50,
		}))

		require.NoError(t, err)
	})

	t.Run("event announcements produce no per-user row", func(t *testing.T) {
		consumer, _ := newConsumer(t)

		err := consumer.HandleDelivery(ctx, delivery(t, notify.RKEventCreated, notify.StudioEvent{
			EventID: "event1",
			Name:    "Open Mic Night",
		}))

		require.NoError(t, err)
	})

	t.Run("unknown routing keys are skipped", func(t *testing.T) {
		consumer, _ := newConsumer(t)

		err := consumer.HandleDelivery(ctx, amqp.Delivery{RoutingKey: "booking.archived", Body: []byte("{}")})

		require.NoError(t, err)
	})

	t.Run("malformed payload is an error", func(t *testing.T) {
		consumer, _ := newConsumer(t)

		err := consumer.HandleDelivery(ctx, amqp.Delivery{RoutingKey: notify.RKBookingCreated, Body: []byte("not json")})

		require.Error(t, err)
	})
}
