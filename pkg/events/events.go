package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/origem/origem-api/pkg/circuitbreaker"
	"github.com/origem/origem-api/pkg/logger"
	"github.com/origem/origem-api/pkg/metrics"
	"github.com/origem/origem-api/pkg/retry"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// Envelope wraps every published payload
type Envelope struct {
	ID         string      `json:"id"`
	Event      string      `json:"event"`
	OccurredAt time.Time   `json:"occurred_at"`
	Data       interface{} `json:"data"`
}

// Publisher publishes lead events. Routing keys are the trigger event names
// (trigger.EventContactCreated, trigger.EventNewsletterSubscribed).
type Publisher interface {
	Publish(ctx context.Context, routingKey string, data interface{}) error
	Close() error
}

// NoopPublisher drops every event. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, interface{}) error { return nil }
func (NoopPublisher) Close() error                                       { return nil }

// amqpChannel is the subset of *amqp.Channel the publisher needs
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
	Close() error
}

// RabbitMQPublisher publishes JSON envelopes to a durable topic exchange
type RabbitMQPublisher struct {
	mu         sync.Mutex
	connection *amqp.Connection
	channel    amqpChannel
	exchange   string
	breaker    *gobreaker.CircuitBreaker
	retryCfg   retry.Config
}

var _ Publisher = (*RabbitMQPublisher)(nil)
var _ Publisher = NoopPublisher{}

// NewPublisher dials the broker when url is set and returns a NoopPublisher otherwise
func NewPublisher(url, exchange string) (Publisher, error) {
	if url == "" {
		logger.Info("RABBITMQ_URL not set, lead events are disabled")
		return NoopPublisher{}, nil
	}

	connection, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial RabbitMQ: %w", err)
	}

	channel, err := openChannel(connection, exchange)
	if err != nil {
		_ = connection.Close()
		return nil, err
	}

	logger.Info("RabbitMQ publisher connected", zap.String("exchange", exchange))

	p := newPublisher(channel, exchange)
	p.connection = connection
	return p, nil
}

func newPublisher(channel amqpChannel, exchange string) *RabbitMQPublisher {
	return &RabbitMQPublisher{
		channel:  channel,
		exchange: exchange,
		breaker:  circuitbreaker.NewCircuitBreaker(circuitbreaker.DefaultConfig("rabbitmq")),
		retryCfg: retry.BrokerConfig(),
	}
}

func openChannel(connection *amqp.Connection, exchange string) (*amqp.Channel, error) {
	channel, err := connection.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = channel.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	return channel, nil
}

// Publish marshals data into an Envelope and publishes it under routingKey
func (p *RabbitMQPublisher) Publish(ctx context.Context, routingKey string, data interface{}) error {
	envelope := Envelope{
		ID:         uuid.NewString(),
		Event:      routingKey,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		metrics.EventsPublished.WithLabelValues(routingKey, "error").Inc()
		return fmt.Errorf("failed to marshal %s event: %w", routingKey, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    envelope.ID,
		Timestamp:    envelope.OccurredAt,
		Type:         routingKey,
		Body:         body,
	}

	start := time.Now()
	err = retry.Do(ctx, p.retryCfg, "publish "+routingKey, func() error {
		_, cbErr := circuitbreaker.Execute(p.breaker, func() (struct{}, error) {
			return struct{}{}, p.publish(ctx, routingKey, msg)
		})
		return cbErr
	})
	duration := metrics.MeasureDuration(start)

	if err != nil {
		metrics.EventsPublished.WithLabelValues(routingKey, "error").Inc()
		logger.LogAPICall(ctx, "rabbitmq", "publish", "error", duration,
			zap.String("routing_key", routingKey),
			zap.Error(err))
		return err
	}

	metrics.EventsPublished.WithLabelValues(routingKey, "success").Inc()
	logger.LogAPICall(ctx, "rabbitmq", "publish", "success", duration,
		zap.String("routing_key", routingKey),
		zap.String("message_id", envelope.ID))
	return nil
}

func (p *RabbitMQPublisher) publish(ctx context.Context, routingKey string, msg amqp.Publishing) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel == nil || p.channel.IsClosed() {
		if p.connection == nil || p.connection.IsClosed() {
			return fmt.Errorf("rabbitmq connection is closed")
		}
		channel, err := openChannel(p.connection, p.exchange)
		if err != nil {
			return err
		}
		p.channel = channel
	}

	return p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg)
}

// Close closes the channel and the connection
func (p *RabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel != nil && !p.channel.IsClosed() {
		if err := p.channel.Close(); err != nil {
			return fmt.Errorf("failed to close channel: %w", err)
		}
	}
	p.channel = nil

	if p.connection != nil && !p.connection.IsClosed() {
		if err := p.connection.Close(); err != nil {
			return fmt.Errorf("failed to close connection: %w", err)
		}
	}
	p.connection = nil
	return nil
}
