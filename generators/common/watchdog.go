package common

import (
	"log"
	"sync"
	"time"
)

// Watchdog closes its done channel when no progress is reported within the timeout.
type Watchdog struct {
	timeout   time.Duration
	onTimeout func()
	timer     *time.Timer
	doneCh    chan struct{}
	once      sync.Once
	mu        sync.Mutex
	running   bool
}

// NewWatchdog creates a new Watchdog. onTimeout, if non-nil, runs once when it fires.
// If timeout is <= 0, the watchdog is inert and never times out.
func NewWatchdog(timeout time.Duration, onTimeout func()) *Watchdog {
	return &Watchdog{
		timeout:   timeout,
		onTimeout: onTimeout,
		doneCh:    make(chan struct{}),
	}
}

// Start arms the watchdog and returns the channel closed on timeout.
func (w *Watchdog) Start() <-chan struct{} {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return w.doneCh
	}
	w.running = true

	if w.timeout <= 0 {
		return w.doneCh
	}

	w.timer = time.AfterFunc(w.timeout, w.fire)
	return w.doneCh
}

// Kick records progress and pushes the deadline out by another timeout.
func (w *Watchdog) Kick() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running || w.timer == nil {
		return
	}

	// Too late once fired.
	select {
	case <-w.doneCh:
		return
	default:
	}

	w.timer.Reset(w.timeout)
}

// Stop disarms the watchdog.
func (w *Watchdog) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
}

// Done returns the channel closed on timeout.
func (w *Watchdog) Done() <-chan struct{} {
	return w.doneCh
}

func (w *Watchdog) fire() {
	w.once.Do(func() {
		log.Printf("[FOODMART] Watchdog timeout (%v) triggered.", w.timeout)
		close(w.doneCh)
		if w.onTimeout != nil {
			w.onTimeout()
		}
	})
}
