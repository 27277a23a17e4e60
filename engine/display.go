package engine

import (
	"time"
)

// FrameFunc is invoked by the host once per display refresh with the host clock time
type FrameFunc func(now time.Time)

// FrameID identifies a pending frame request
type FrameID uint64

// ListenerID identifies a registered resize listener
type ListenerID uint64

// FrameScheduler is the host frame primitive. A requested callback runs at most once;
// the callee must request again to keep animating
type FrameScheduler interface {
	RequestFrame(fn FrameFunc) FrameID
	CancelFrame(id FrameID)
}

// ResizeNotifier delivers display layout changes
type ResizeNotifier interface {
	AddResizeListener(fn func()) ListenerID
	RemoveResizeListener(id ListenerID)
}

// Display reports displayed size in layout pixels and the device pixel ratio
type Display interface {
	Size() (width, height int)
	PixelRatio() float64
}

// FrameObserver watches completed frames, called on the loop goroutine after drawing
type FrameObserver interface {
	ObserveFrame(snap Snapshot, elapsed time.Duration)
}

// ObserverFunc adapts a function to FrameObserver
type ObserverFunc func(snap Snapshot, elapsed time.Duration)

// ObserveFrame calls f
func (f ObserverFunc) ObserveFrame(snap Snapshot, elapsed time.Duration) {
	f(snap, elapsed)
}
