package broker

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"booking-engine/internal/domain/notification"
	"booking-engine/internal/pkg/config"
	"booking-engine/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitPublisher publishes events to a durable topic exchange, routed by
// event type. The connection is opened lazily and reopened after a failure.
type RabbitPublisher struct {
	url      string
	exchange string
	logger   *slog.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewRabbitPublisher(cfg config.BrokerConfig, logger *slog.Logger) *RabbitPublisher {
	return &RabbitPublisher{
		url:      cfg.URL,
		exchange: cfg.Exchange,
		logger:   logger,
	}
}

func (p *RabbitPublisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	p.closeLocked()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, errs.Wrap(err, "rabbitmq: dial failed")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "rabbitmq: channel open failed")
	}
	if err := ch.ExchangeDeclare(
		p.exchange, // name
		"topic",    // kind
		true,       // durable
		false,      // autoDelete
		false,      // internal
		false,      // noWait
		nil,        // args
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrap(err, "rabbitmq: exchange declare failed")
	}

	p.conn, p.ch = conn, ch
	return ch, nil
}

func (p *RabbitPublisher) Publish(ctx context.Context, e notification.Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return errs.Wrap(err, "rabbitmq: marshal event failed")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    e.ID.String(),
		Timestamp:    time.Now().UTC(),
		Type:         string(e.Type),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, p.exchange, string(e.Type), false, false, pub); err != nil {
		p.closeLocked()
		return errs.Wrap(err, "rabbitmq: publish failed")
	}
	return nil
}

func (p *RabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closeLocked()
	return nil
}

func (p *RabbitPublisher) closeLocked() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && !errs.Is(err, amqp.ErrClosed) {
			p.logger.Warn("rabbitmq: close failed", slog.Any("error", err))
		}
		p.conn = nil
	}
}

// LogPublisher writes events to the log. It stands in when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, e notification.Event) error {
	p.logger.Info("notification event",
		slog.String("type", string(e.Type)),
		slog.String("resource_kind", string(e.ResourceKind)),
		slog.String("date", e.Date),
		slog.Any("reservation_id", e.ReservationID),
	)
	return nil
}
