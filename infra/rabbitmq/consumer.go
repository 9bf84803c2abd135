package rabbitmq

import (
	"catalog/pkg/events"
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// EventHandler processes a single decoded event. A non-nil error sends the
// message to the dead letter queue.
type EventHandler func(ctx context.Context, event *events.Event) error

// ConsumerConfig describes the queue a consumer reads from and how it is
// bound to the exchange.
type ConsumerConfig struct {
	Exchange      string
	QueueName     string
	RoutingKeys   []string
	ServiceName   string
	PrefetchCount int
}

// Consumer reads events from a RabbitMQ queue and dispatches them to an
// EventHandler with manual acknowledgements.
type Consumer struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	config  ConsumerConfig
}

// NewConsumer connects to RabbitMQ and declares the exchange, queue, and
// dead letter topology the config describes.
func NewConsumer(url string, config ConsumerConfig) (*Consumer, error) {
	conn, err := dial(url)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	prefetch := config.PrefetchCount
	if prefetch == 0 {
		prefetch = 10
	}
	if err := channel.Qos(prefetch, 0, false); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	if err := declareTopology(channel, config); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	zap.L().Info("RabbitMQ consumer connected",
		zap.String("exchange", config.Exchange),
		zap.String("queue", config.QueueName),
		zap.Strings("routingKeys", config.RoutingKeys))

	return &Consumer{
		conn:    conn,
		channel: channel,
		config:  config,
	}, nil
}

// declareTopology sets up the exchange, the consumer queue, and the dead
// letter pair rejected messages route to.
func declareTopology(channel *amqp.Channel, config ConsumerConfig) error {
	if err := declareTopicExchange(channel, config.Exchange); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	dlx := config.Exchange + ".dlx"
	if err := declareTopicExchange(channel, dlx); err != nil {
		return fmt.Errorf("failed to declare dead letter exchange: %w", err)
	}

	queue, err := channel.QueueDeclare(
		config.QueueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		amqp.Table{"x-dead-letter-exchange": dlx},
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	dlq := config.QueueName + ".dlq"
	if _, err := channel.QueueDeclare(dlq, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare dead letter queue: %w", err)
	}

	for _, routingKey := range config.RoutingKeys {
		if err := channel.QueueBind(queue.Name, routingKey, config.Exchange, false, nil); err != nil {
			return fmt.Errorf("failed to bind queue: %w", err)
		}
		if err := channel.QueueBind(dlq, routingKey, dlx, false, nil); err != nil {
			return fmt.Errorf("failed to bind dead letter queue: %w", err)
		}
	}

	return nil
}

// Consume blocks reading deliveries until the context is cancelled.
func (c *Consumer) Consume(ctx context.Context, handler EventHandler) error {
	deliveries, err := c.channel.Consume(
		c.config.QueueName,
		c.config.ServiceName, // consumer tag
		false,                // auto-ack
		false,                // exclusive
		false,                // no-local
		false,                // no-wait
		nil,                  // args
	)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			c.handleMessage(ctx, delivery, handler)
		}
	}
}

func (c *Consumer) handleMessage(ctx context.Context, delivery amqp.Delivery, handler EventHandler) {
	traceID, _ := delivery.Headers["x-trace-id"].(string)
	service, _ := delivery.Headers["x-service"].(string)

	var event events.Event
	if err := json.Unmarshal(delivery.Body, &event); err != nil {
		zap.L().Error("Failed to decode event, rejecting",
			zap.String("traceId", traceID),
			zap.Error(err))
		_ = delivery.Nack(false, false)
		return
	}

	processCtx, cancel := context.WithTimeout(ctx, processTimeout)
	defer cancel()

	if err := handler(processCtx, &event); err != nil {
		zap.L().Error("Event handler failed, rejecting",
			zap.String("event", event.Event),
			zap.String("traceId", traceID),
			zap.String("sourceService", service),
			zap.Error(err))
		_ = delivery.Nack(false, false)
		return
	}

	_ = delivery.Ack(false)
}

// Close closes the RabbitMQ connection
func (c *Consumer) Close() error {
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			zap.L().Error("Failed to close channel", zap.Error(err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			zap.L().Error("Failed to close connection", zap.Error(err))
			return err
		}
	}
	zap.L().Info("RabbitMQ consumer closed")
	return nil
}
