package event

import (
	"context"
	"encoding/json"

	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

// HandlerFunc processes one decoded event. Returning an error nacks the
// delivery for redelivery.
type HandlerFunc func(ctx context.Context, env Envelope) error

// Consumer binds a durable queue to the topic exchange and dispatches
// matching events to a handler.
type Consumer struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	logger  *zap.Logger
}

func NewConsumer(amqpURL, exchange, queue string, bindings []string, logger *zap.Logger) (*Consumer, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	for _, key := range bindings {
		if err := ch.QueueBind(queue, key, exchange, false, nil); err != nil {
			ch.Close()
			conn.Close()
			return nil, err
		}
	}
	return &Consumer{conn: conn, channel: ch, queue: queue, logger: logger}, nil
}

// Run consumes deliveries until the context is cancelled or the channel
// closes.
func (c *Consumer) Run(ctx context.Context, handler HandlerFunc) error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}
			var env Envelope
			if err := json.Unmarshal(d.Body, &env); err != nil {
				c.logger.Warn("dropping undecodable event", zap.Error(err))
				_ = d.Nack(false, false)
				continue
			}
			if err := handler(ctx, env); err != nil {
				c.logger.Warn("event handler failed", zap.String("type", env.Type), zap.Error(err))
				_ = d.Nack(false, true)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (c *Consumer) Close() {
	if c.channel != nil {
		_ = c.channel.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}
