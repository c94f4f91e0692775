package notify

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
)

// HandleDelivery exposes handleDelivery to the external test package.
func (c *Consumer) HandleDelivery(ctx context.Context, d amqp.Delivery) error {
	return c.handleDelivery(ctx, d)
}
