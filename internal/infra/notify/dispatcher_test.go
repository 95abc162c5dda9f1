//go:build unit

package notify

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"booking-engine/internal/domain/notification"
	"booking-engine/internal/infra/db"
	"booking-engine/internal/pkg/config"
	"booking-engine/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	mu        sync.Mutex
	failTimes int
	calls     int
	published []notification.Event
}

func (p *fakePublisher) Publish(_ context.Context, e notification.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.calls <= p.failTimes {
		return assert.AnError
	}
	p.published = append(p.published, e)
	return nil
}

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs []shared.NotificationJob
}

func (r *fakeJobRepo) CreateJob(_ context.Context, _ db.DBTX, job shared.NotificationJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs = append(r.jobs, job)
	return nil
}

type countingObserver struct {
	mu      sync.Mutex
	results map[string]int
}

func (o *countingObserver) ObserveDelivery(_ notification.EventType, result string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.results == nil {
		o.results = map[string]int{}
	}
	o.results[result]++
}

func newTestDispatcher(cfg config.NotificationConfig, pub Publisher, repo shared.NotificationRepository, obs DeliveryObserver) *Dispatcher {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewDispatcher(cfg, pub, repo, nil, obs, logger)
}

func testEvent() notification.Event {
	return notification.AvailabilityEvent(notification.KindRoom, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), time.Now())
}

func TestDispatcher_PublishesAfterRetry(t *testing.T) {
	pub := &fakePublisher{failTimes: 2}
	repo := &fakeJobRepo{}
	obs := &countingObserver{}
	d := newTestDispatcher(config.NotificationConfig{BufferSize: 4, MaxAttempts: 3, BaseBackoff: time.Millisecond}, pub, repo, obs)

	d.Start()
	d.Emit(testEvent())
	require.NoError(t, d.Stop(context.Background()))

	assert.Len(t, pub.published, 1)
	assert.Equal(t, 3, pub.calls)
	assert.Empty(t, repo.jobs)
	assert.Equal(t, 1, obs.results[DeliveryPublished])
}

func TestDispatcher_DeadLettersAfterExhaustion(t *testing.T) {
	pub := &fakePublisher{failTimes: 100}
	repo := &fakeJobRepo{}
	obs := &countingObserver{}
	d := newTestDispatcher(config.NotificationConfig{BufferSize: 4, MaxAttempts: 2, BaseBackoff: time.Millisecond}, pub, repo, obs)

	d.Start()
	d.Emit(testEvent())
	require.NoError(t, d.Stop(context.Background()))

	require.Len(t, repo.jobs, 1)
	job := repo.jobs[0]
	assert.Equal(t, shared.JobStatusFailed, job.Status)
	assert.Equal(t, string(notification.AvailabilityChanged), job.Topic)
	assert.Equal(t, 2, job.Attempts)
	require.NotNil(t, job.LastError)
	assert.Equal(t, 1, obs.results[DeliveryDeadLettered])
}

func TestDispatcher_EmitNeverBlocks(t *testing.T) {
	pub := &fakePublisher{}
	obs := &countingObserver{}
	// worker not started, so the single-slot buffer fills immediately
	d := newTestDispatcher(config.NotificationConfig{BufferSize: 1, MaxAttempts: 1}, pub, &fakeJobRepo{}, obs)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			d.Emit(testEvent())
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Emit blocked on a full buffer")
	}
	assert.Equal(t, 9, obs.results[DeliveryDropped])
}

func TestDispatcher_EmitAfterStopIsDropped(t *testing.T) {
	pub := &fakePublisher{}
	obs := &countingObserver{}
	d := newTestDispatcher(config.NotificationConfig{BufferSize: 4, MaxAttempts: 1}, pub, &fakeJobRepo{}, obs)

	d.Start()
	require.NoError(t, d.Stop(context.Background()))
	d.Emit(testEvent())

	assert.Empty(t, pub.published)
	assert.Equal(t, 1, obs.results[DeliveryDropped])
}

func (p *fakePublisher) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func TestDispatcher_StopInterruptsBackoff(t *testing.T) {
	pub := &fakePublisher{failTimes: 100}
	repo := &fakeJobRepo{}
	obs := &countingObserver{}
	d := newTestDispatcher(config.NotificationConfig{BufferSize: 4, MaxAttempts: 3, BaseBackoff: time.Hour}, pub, repo, obs)

	d.Start()
	d.Emit(testEvent())
	require.Eventually(t, func() bool { return pub.callCount() == 1 }, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, d.Stop(ctx))

	require.Len(t, repo.jobs, 1)
	assert.Equal(t, 1, repo.jobs[0].Attempts)
	assert.Equal(t, 1, obs.results[DeliveryDeadLettered])
}

func TestDispatcher_EveryEmitIsAccountedForAcrossStop(t *testing.T) {
	pub := &fakePublisher{}
	obs := &countingObserver{}
	d := newTestDispatcher(config.NotificationConfig{BufferSize: 64, MaxAttempts: 1}, pub, &fakeJobRepo{}, obs)
	d.Start()

	const emitters, perEmitter = 8, 50
	var wg sync.WaitGroup
	for i := 0; i < emitters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perEmitter; j++ {
				d.Emit(testEvent())
			}
		}()
	}
	time.Sleep(time.Millisecond)
	require.NoError(t, d.Stop(context.Background()))
	wg.Wait()

	obs.mu.Lock()
	defer obs.mu.Unlock()
	assert.Equal(t, emitters*perEmitter, obs.results[DeliveryPublished]+obs.results[DeliveryDropped])
	assert.Equal(t, obs.results[DeliveryPublished], len(pub.published))
}
