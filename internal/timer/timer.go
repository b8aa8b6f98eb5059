package timer

import (
	"sync"
	"sync/atomic"
	"time"
)

// DefaultDuration is the length of an exam when none is configured.
const DefaultDuration = 3600 * time.Second

// Timer counts down from a fixed duration measured from a fixed start.
// It holds no mutable state and is safe for concurrent use.
type Timer struct {
	start    time.Time
	duration time.Duration
	now      func() time.Time
}

func (t *Timer) Start() time.Time        { return t.start }
func (t *Timer) Duration() time.Duration { return t.duration }
func (t *Timer) Elapsed() time.Duration  { return t.now().Sub(t.start) }

// RemainingSeconds returns max(0, duration - elapsed) in whole seconds.
func (t *Timer) RemainingSeconds() int {
	left := int((t.duration - t.Elapsed()) / time.Second)
	if left < 0 {
		return 0
	}
	return left
}

// Registry owns the single Timer of a process. The first call to Timer
// creates it; later calls return the same instance.
type Registry struct {
	mu       sync.Mutex
	t        atomic.Pointer[Timer]
	duration time.Duration
	now      func() time.Time
}

// NewRegistry returns a registry whose timer will run for d.
// A nil clock uses time.Now.
func NewRegistry(d time.Duration, now func() time.Time) *Registry {
	if d <= 0 {
		d = DefaultDuration
	}
	if now == nil {
		now = time.Now
	}
	return &Registry{duration: d, now: now}
}

// Configure sets the duration of a timer that has not started yet. It
// reports false, and changes nothing, once the timer exists.
func (r *Registry) Configure(d time.Duration) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.t.Load() != nil {
		return false
	}
	if d <= 0 {
		d = DefaultDuration
	}
	r.duration = d
	return true
}

func (r *Registry) Timer() *Timer {
	if t := r.t.Load(); t != nil {
		return t
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if t := r.t.Load(); t != nil {
		return t
	}
	t := &Timer{start: r.now(), duration: r.duration, now: r.now}
	r.t.Store(t)
	return t
}

var process = NewRegistry(DefaultDuration, nil)

// Default returns the process-wide timer, starting it on first use.
func Default() *Timer { return process.Timer() }

// Configure sets the process-wide timer's duration; see Registry.Configure.
func Configure(d time.Duration) bool { return process.Configure(d) }
