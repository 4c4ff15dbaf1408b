// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"errors"
	"sync"
	"time"

	"github.com/canonical/tenant-manager/internal/logging"
	"github.com/canonical/tenant-manager/internal/monitoring"
	"github.com/canonical/tenant-manager/internal/tracing"
)

// ErrQueueFull is returned by Enqueue when the outbound queue is at capacity.
var ErrQueueFull = errors.New("mail queue is full")

var _ DispatcherInterface = (*Dispatcher)(nil)

// Dispatcher delivers mail on a background goroutine so request handlers never
// block on SMTP. Delivery is best effort: failures are retried a bounded
// number of times and then logged and dropped.
type Dispatcher struct {
	sender     SenderInterface
	queue      chan Message
	maxRetries int
	retryDelay time.Duration

	wg       sync.WaitGroup
	stopOnce sync.Once

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewDispatcher(sender SenderInterface, queueSize, maxRetries int, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 1
	}

	d := new(Dispatcher)

	d.sender = sender
	d.queue = make(chan Message, queueSize)
	d.maxRetries = maxRetries
	d.retryDelay = time.Second

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d
}

// Start launches the delivery worker. Call Shutdown to drain and stop it.
func (d *Dispatcher) Start() {
	d.wg.Add(1)
	go d.run()
}

// Enqueue queues a message for delivery without blocking. Callers treat a full
// queue as a delivery failure for that message only.
func (d *Dispatcher) Enqueue(msg Message) error {
	select {
	case d.queue <- msg:
		return nil
	default:
		return ErrQueueFull
	}
}

// Shutdown closes the queue and waits for the worker to drain it.
func (d *Dispatcher) Shutdown() {
	d.stopOnce.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}

func (d *Dispatcher) run() {
	defer d.wg.Done()

	for msg := range d.queue {
		d.deliver(msg)
	}
}

func (d *Dispatcher) deliver(msg Message) {
	var err error
	for attempt := 0; attempt <= d.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(d.retryDelay)
		}
		if err = d.sender.Send(msg); err == nil {
			return
		}
		d.logger.Warnf("mail delivery attempt %d for %s failed: %v", attempt+1, msg.To, err)
	}

	d.logger.Errorf("dropping mail to %s after %d attempts: %v", msg.To, d.maxRetries+1, err)
}
