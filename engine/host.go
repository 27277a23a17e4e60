package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type pendingFrame struct {
	id FrameID
	fn FrameFunc
}

type resizeListener struct {
	id ListenerID
	fn func()
}

// Host is the frame and resize primitive for terminal and headless runs.
// Run owns one goroutine; frame callbacks, posted work and resize listeners all execute
// on it, so loops and controllers never see concurrent calls
type Host struct {
	clock    clockwork.Clock
	interval time.Duration
	logger   *slog.Logger

	mu        sync.Mutex
	pending   []pendingFrame
	inflight  []pendingFrame
	nextFrame FrameID

	listeners    []resizeListener
	nextListener ListenerID

	posted   chan func()
	done     chan struct{}
	doneOnce sync.Once
}

// NewHost creates a host ticking at fps frames per second
func NewHost(clock clockwork.Clock, fps int, logger *slog.Logger) *Host {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	fps = max(fps, 1)
	return &Host{
		clock:    clock,
		interval: time.Second / time.Duration(fps),
		logger:   logger,
		posted:   make(chan func(), 64),
		done:     make(chan struct{}),
	}
}

// Interval returns the tick period
func (h *Host) Interval() time.Duration {
	return h.interval
}

// RequestFrame implements FrameScheduler. Requests made during a flush run on the next tick
func (h *Host) RequestFrame(fn FrameFunc) FrameID {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextFrame++
	h.pending = append(h.pending, pendingFrame{id: h.nextFrame, fn: fn})
	return h.nextFrame
}

// CancelFrame implements FrameScheduler, including a callback in the batch being flushed
func (h *Host) CancelFrame(id FrameID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, p := range h.pending {
		if p.id == id {
			h.pending = append(h.pending[:i], h.pending[i+1:]...)
			return
		}
	}
	for i := range h.inflight {
		if h.inflight[i].id == id {
			h.inflight[i].fn = nil
			return
		}
	}
}

// Pending returns the number of queued frame callbacks
func (h *Host) Pending() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.pending)
}

// Flush runs every callback queued before the call, returns how many ran
func (h *Host) Flush(now time.Time) int {
	h.mu.Lock()
	batch := h.pending
	h.pending = nil
	h.inflight = batch
	h.mu.Unlock()

	ran := 0
	for i := range batch {
		h.mu.Lock()
		fn := h.inflight[i].fn
		h.inflight[i].fn = nil
		h.mu.Unlock()

		if fn == nil {
			continue
		}
		fn(now)
		ran++
	}

	h.mu.Lock()
	h.inflight = nil
	h.mu.Unlock()
	return ran
}

// AddResizeListener implements ResizeNotifier
func (h *Host) AddResizeListener(fn func()) ListenerID {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextListener++
	h.listeners = append(h.listeners, resizeListener{id: h.nextListener, fn: fn})
	return h.nextListener
}

// RemoveResizeListener implements ResizeNotifier
func (h *Host) RemoveResizeListener(id ListenerID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, l := range h.listeners {
		if l.id == id {
			h.listeners = append(h.listeners[:i], h.listeners[i+1:]...)
			return
		}
	}
}

// NotifyResize calls every listener synchronously, must run on the host goroutine
func (h *Host) NotifyResize() {
	h.mu.Lock()
	listeners := make([]resizeListener, len(h.listeners))
	copy(listeners, h.listeners)
	h.mu.Unlock()

	for _, l := range listeners {
		l.fn()
	}
}

// Post queues fn for the host goroutine. Returns false once Run has exited
func (h *Host) Post(fn func()) bool {
	select {
	case <-h.done:
		return false
	default:
	}
	select {
	case h.posted <- fn:
		return true
	case <-h.done:
		return false
	}
}

// PostResize queues a resize notification
func (h *Host) PostResize() bool {
	return h.Post(h.NotifyResize)
}

// Done is closed when Run returns
func (h *Host) Done() <-chan struct{} {
	return h.done
}

// Run dispatches posted work and frame callbacks until ctx is cancelled
func (h *Host) Run(ctx context.Context) error {
	defer h.doneOnce.Do(func() { close(h.done) })

	ticker := h.clock.NewTicker(h.interval)
	defer ticker.Stop()

	h.logger.Debug("host running", "interval", h.interval)
	for {
		select {
		case <-ctx.Done():
			h.logger.Debug("host stopped")
			return nil
		case fn := <-h.posted:
			fn()
		case now := <-ticker.Chan():
			h.Flush(now)
		}
	}
}
