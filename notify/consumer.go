package notify

import (
	"context"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"
)

type ConsumerConfig struct {
	URL      string
	Exchange string
	Queue    string
	Prefetch int
}

// Consumer turns bus events into user notifications.
type Consumer struct {
	cfg      ConsumerConfig
	notifier Notifier
	logger   *slog.Logger

	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewConsumer(cfg ConsumerConfig, notifier Notifier) *Consumer {
	return &Consumer{
		cfg:      cfg,
		notifier: notifier,
		logger:   slog.Default().With("component", "notify-consumer"),
	}
}

func (c *Consumer) Connect() error {
	conn, err := amqp.Dial(c.cfg.URL)
	if err != nil {
		return fmt.Errorf("rabbit dial failed: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("open channel failed: %w", err)
	}

	if err := ch.ExchangeDeclare(c.cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("declare exchange failed: %w", err)
	}

	q, err := ch.QueueDeclare(c.cfg.Queue, true, false, false, false, nil)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("declare queue failed: %w", err)
	}

	for _, key := range []string{"booking.*", "payment.*", "event.*"} {
		if err := ch.QueueBind(q.Name, key, c.cfg.Exchange, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return fmt.Errorf("bind queue key=%s failed: %w", key, err)
		}
	}

	if c.cfg.Prefetch <= 0 {
		c.cfg.Prefetch = 8
	}

	if err := ch.Qos(c.cfg.Prefetch, 0, false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("set qos failed: %w", err)
	}

	c.conn = conn
	c.ch = ch
	return nil
}

func (c *Consumer) Close() {
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

func (c *Consumer) Run(ctx context.Context) error {
	msgs, err := c.ch.ConsumeWithContext(ctx, c.cfg.Queue, "booth33-notify", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume failed: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			if err := c.handleDelivery(ctx, d); err != nil {
				c.logger.Error("handle delivery failed", "key", d.RoutingKey, "err", err)
				_ = d.Nack(false, true)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (c *Consumer) handleDelivery(ctx context.Context, d amqp.Delivery) error {
	switch d.RoutingKey {
	case RKBookingCreated:
		ev, err := Unmarshal[BookingEvent](d.Body)
		if err != nil {
			return err
		}
		return c.notifier.Notify(ctx, ev.UserID, "booking", "Booking Received",
			fmt.Sprintf("Your %v session on %v at %v is pending review.", ev.SessionType, ev.Date, ev.TimeSlot),
			map[string]any{"bookingId": ev.BookingID})

	case RKBookingConfirmed:
		ev, err := Unmarshal[BookingEvent](d.Body)
		if err != nil {
			return err
		}
		return c.notifier.Notify(ctx, ev.UserID, "booking", "Booking Confirmed",
			fmt.Sprintf("Your session on %v at %v is confirmed. See you at the booth!", ev.Date, ev.TimeSlot),
			map[string]any{"bookingId": ev.BookingID})

	case RKBookingCancelled:
		ev, err := Unmarshal[BookingEvent](d.Body)
		if err != nil {
			return err
		}
		message := fmt.Sprintf("Your session on %v at %v was cancelled.", ev.Date, ev.TimeSlot)
		if ev.Reason != "" {
			message = fmt.Sprintf("%v Reason: %v", message, ev.Reason)
		}
		return c.notifier.Notify(ctx, ev.UserID, "booking", "Booking Cancelled", message,
			map[string]any{"bookingId": ev.BookingID})

	case RKBookingCompleted:
		ev, err := Unmarshal[BookingEvent](d.Body)
		if err != nil {
			return err
		}
		return c.notifier.Notify(ctx, ev.UserID, "session", "Session Completed",
			"Your session is complete. Your files will appear under Sessions once they are ready.",
			map[string]any{"bookingId": ev.BookingID})

	case RKPaymentCaptured:
		ev, err := Unmarshal[PaymentEvent](d.Body)
		if err != nil {
			return err
		}
		return c.notifier.Notify(ctx, ev.UserID, "payment", "Payment Received",
			fmt.Sprintf("We charged $%.2f for your booking.", ev.Amount),
			map[string]any{"transactionId": ev.TransactionID, "bookingId": ev.BookingID})

	case RKPaymentFailed:
		ev, err := Unmarshal[PaymentEvent](d.Body)
		if err != nil {
			return err
		}
		return c.notifier.Notify(ctx, ev.UserID, "payment", "Payment Failed",
			fmt.Sprintf("A charge of $%.2f did not go through. Please try again.", ev.Amount),
			map[string]any{"transactionId": ev.TransactionID, "bookingId": ev.BookingID})

	case RKPaymentRefunded:
		ev, err := Unmarshal[PaymentEvent](d.Body)
		if err != nil {
			return err
		}
		return c.notifier.Notify(ctx, ev.UserID, "payment", "Refund Issued",
			fmt.Sprintf("A refund of $%.2f was issued to your payment method.", ev.Amount),
			map[string]any{"transactionId": ev.TransactionID})

	case RKEventCreated:
		// Feed announcements are handled by the feed, not per-user rows.
		return nil

	default:
		c.logger.Info("skip unknown routing key", "key", d.RoutingKey)
	}

	return nil
}
