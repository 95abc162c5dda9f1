package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"booking-engine/internal/domain/notification"
	"booking-engine/internal/infra/db"
	"booking-engine/internal/pkg/config"
	"booking-engine/internal/usecase/shared"
)

type Publisher interface {
	Publish(ctx context.Context, e notification.Event) error
}

// DeliveryObserver counts delivery results per event type.
type DeliveryObserver interface {
	ObserveDelivery(eventType notification.EventType, result string)
}

const (
	DeliveryPublished    = "published"
	DeliveryDeadLettered = "dead_lettered"
	DeliveryDropped      = "dropped"
)

const deadLetterKind = "booking_event"

// Dispatcher is the notification Emitter. Emit enqueues without blocking and a
// single worker publishes with retries. Events that exhaust their retries are
// stored in notification_jobs with status failed.
type Dispatcher struct {
	events      chan notification.Event
	quit        chan struct{}
	done        chan struct{}
	mu          sync.RWMutex
	stopped     bool
	publisher   Publisher
	deadLetters shared.NotificationRepository
	db          db.DBTX
	observer    DeliveryObserver
	maxAttempts int
	baseBackoff time.Duration
	logger      *slog.Logger
}

func NewDispatcher(
	cfg config.NotificationConfig,
	publisher Publisher,
	deadLetters shared.NotificationRepository,
	db db.DBTX,
	observer DeliveryObserver,
	logger *slog.Logger,
) *Dispatcher {
	size := cfg.BufferSize
	if size <= 0 {
		size = 1
	}
	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}
	return &Dispatcher{
		events:      make(chan notification.Event, size),
		quit:        make(chan struct{}),
		done:        make(chan struct{}),
		publisher:   publisher,
		deadLetters: deadLetters,
		db:          db,
		observer:    observer,
		maxAttempts: attempts,
		baseBackoff: cfg.BaseBackoff,
		logger:      logger,
	}
}

// Emit never blocks. A full buffer or a stopped dispatcher drops the event.
// The read lock keeps a send from landing after the worker's final drain.
func (d *Dispatcher) Emit(e notification.Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		d.drop(e, "dispatcher stopped")
		return
	}
	select {
	case d.events <- e:
	default:
		d.drop(e, "buffer full")
	}
}

func (d *Dispatcher) drop(e notification.Event, reason string) {
	d.logger.Warn("notification dropped",
		slog.String("type", string(e.Type)),
		slog.String("reason", reason),
	)
	d.observer.ObserveDelivery(e.Type, DeliveryDropped)
}

func (d *Dispatcher) Start() {
	go d.run()
}

// Stop lets the worker drain buffered events until ctx expires. Once stopped,
// a failed publish is dead-lettered without waiting out the backoff.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.stopped {
		d.stopped = true
		close(d.quit)
	}
	d.mu.Unlock()
	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)
	ctx := context.Background()
	for {
		select {
		case e := <-d.events:
			d.deliver(ctx, e)
		case <-d.quit:
			for {
				select {
				case e := <-d.events:
					d.deliver(ctx, e)
				default:
					return
				}
			}
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, e notification.Event) {
	var lastErr error
	attempts := 0
	for attempt := 0; attempt < d.maxAttempts; attempt++ {
		if attempt > 0 && !d.backoff(attempt) {
			break
		}
		attempts++
		if lastErr = d.publisher.Publish(ctx, e); lastErr == nil {
			d.observer.ObserveDelivery(e.Type, DeliveryPublished)
			return
		}
		d.logger.Warn("notification publish failed",
			slog.String("type", string(e.Type)),
			slog.Int("attempt", attempt+1),
			slog.Any("error", lastErr),
		)
	}
	d.deadLetter(ctx, e, attempts, lastErr)
}

// backoff waits before the given retry and reports false if the dispatcher
// stopped in the meantime.
func (d *Dispatcher) backoff(attempt int) bool {
	timer := time.NewTimer(d.baseBackoff << (attempt - 1))
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-d.quit:
		return false
	}
}

func (d *Dispatcher) deadLetter(ctx context.Context, e notification.Event, attempts int, cause error) {
	payload, err := json.Marshal(e)
	if err != nil {
		d.logger.Error("notification marshal failed", slog.Any("error", err))
		return
	}
	msg := cause.Error()
	job := shared.NotificationJob{
		Kind:      deadLetterKind,
		Topic:     string(e.Type),
		Payload:   payload,
		RunAt:     e.OccurredAt,
		Attempts:  attempts,
		Status:    shared.JobStatusFailed,
		LastError: &msg,
	}
	if err := d.deadLetters.CreateJob(ctx, d.db, job); err != nil {
		d.logger.Error("notification dead letter failed",
			slog.String("type", string(e.Type)),
			slog.Any("error", err),
		)
		return
	}
	d.observer.ObserveDelivery(e.Type, DeliveryDeadLettered)
}

type NopDeliveryObserver struct{}

func (NopDeliveryObserver) ObserveDelivery(notification.EventType, string) {}
