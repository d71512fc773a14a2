package notify

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/mmynk/splitledger/internal/metrics"
)

// Queue is an in-memory Dispatcher that hands notifications to a Sender on
// worker goroutines. It is safe for concurrent use.
//
// Notify never blocks: when the buffer is full or the queue is stopped the
// notification is dropped and counted.
type Queue struct {
	sender    Sender
	logger    *slog.Logger
	workers   int
	ch        chan Notification
	closeChan chan struct{}
	wg        sync.WaitGroup
	mu        sync.RWMutex
	started   bool
	closed    bool
}

// NewQueue creates a queue. bufferSize determines how many notifications can
// wait before new ones are dropped.
func NewQueue(sender Sender, bufferSize, workers int, logger *slog.Logger) *Queue {
	if bufferSize < 1 {
		bufferSize = 1
	}
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Queue{
		sender:    sender,
		logger:    logger,
		workers:   workers,
		ch:        make(chan Notification, bufferSize),
		closeChan: make(chan struct{}),
	}
}

// Start launches the workers. They run until Stop is called.
func (q *Queue) Start() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return errors.New("notification queue is closed")
	}
	if q.started {
		return nil
	}
	q.started = true

	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.worker()
	}
	return nil
}

// Notify implements Dispatcher.
func (q *Queue) Notify(ctx context.Context, n Notification) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	if q.closed {
		q.drop(ctx, n, "queue stopped")
		return
	}

	select {
	case q.ch <- n:
	default:
		q.drop(ctx, n, "queue full")
	}
}

func (q *Queue) drop(ctx context.Context, n Notification, reason string) {
	metrics.NotificationsDropped.Inc()
	q.logger.WarnContext(ctx, "Dropping notification",
		"party_id", n.PartyID, "kind", string(n.Kind), "reason", reason)
}

func (q *Queue) worker() {
	defer q.wg.Done()

	for {
		select {
		case n := <-q.ch:
			q.deliver(n)
		case <-q.closeChan:
			// Drain what was accepted before Stop.
			for {
				select {
				case n := <-q.ch:
					q.deliver(n)
				default:
					return
				}
			}
		}
	}
}

func (q *Queue) deliver(n Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := q.sender.Send(ctx, n); err != nil {
		q.logger.Warn("Failed to deliver notification",
			"party_id", n.PartyID, "kind", string(n.Kind), "error", err)
	}
}

// Stop refuses new notifications, delivers the ones already queued and waits
// for the workers to finish or ctx to expire.
func (q *Queue) Stop(ctx context.Context) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	close(q.closeChan)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Ensure Queue implements Dispatcher.
var _ Dispatcher = (*Queue)(nil)
