// Package loadstate tracks the fetch lifecycle of one screen's collection and
// derives what the screen should render from it.
package loadstate

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// Status is the explicit lifecycle state of a loader
type Status int

const (
	NotLoaded Status = iota
	Loading
	Loaded
	Failed
)

func (s Status) String() string {
	switch s {
	case NotLoaded:
		return "not_loaded"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Mode is what a screen renders
type Mode int

const (
	ModeLoading Mode = iota
	ModeError
	ModeEmpty
	ModePopulated
)

func (m Mode) String() string {
	switch m {
	case ModeLoading:
		return "loading"
	case ModeError:
		return "error"
	case ModeEmpty:
		return "empty"
	case ModePopulated:
		return "populated"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// DeriveMode applies the render precedence: a failure wins, then an absent
// collection shows loading, then empty, then populated.
func DeriveMode(present bool, length int, failed bool) Mode {
	switch {
	case failed:
		return ModeError
	case !present:
		return ModeLoading
	case length == 0:
		return ModeEmpty
	default:
		return ModePopulated
	}
}

// Ticket identifies one started load. Only the newest ticket may finish.
type Ticket uint64

// FetchFunc retrieves a collection
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Option configures a Loader
type Option[T any] func(*Loader[T])

// WithTransform rewrites every successfully loaded collection before it is stored
func WithTransform[T any](fn func([]T) []T) Option[T] {
	return func(l *Loader[T]) {
		l.transform = fn
	}
}

// Snapshot is a point-in-time copy of a loader
type Snapshot[T any] struct {
	Status  Status
	Data    []T
	Present bool
	Failed  bool
	Err     error // Last failure, kept for logs and tests
}

// Mode derives the render mode of the snapshot
func (s Snapshot[T]) Mode() Mode {
	return DeriveMode(s.Present, len(s.Data), s.Failed)
}

// Loader owns a collection, its failure flag and the in-flight fetch.
// It is safe for concurrent use.
type Loader[T any] struct {
	mu        sync.Mutex
	fetch     FetchFunc[T]
	transform func([]T) []T

	status  Status
	data    []T
	present bool
	failed  bool
	err     error

	gen    Ticket
	cancel context.CancelFunc
}

// New creates a loader in the NotLoaded state
func New[T any](fetch FetchFunc[T], opts ...Option[T]) *Loader[T] {
	l := &Loader[T]{fetch: fetch}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Begin starts a load. It clears the failure flag, supersedes and cancels any
// in-flight load, and returns the ticket and context for the new fetch.
func (l *Loader[T]) Begin(parent context.Context) (Ticket, context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancel != nil {
		l.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	l.cancel = cancel
	l.gen++

	l.failed = false
	l.err = nil
	l.status = Loading

	return l.gen, ctx
}

// Fetch runs the loader's fetch function without touching state
func (l *Loader[T]) Fetch(ctx context.Context) ([]T, error) {
	return l.fetch(ctx)
}

// Finish records the outcome of the load identified by ticket. Outcomes of
// superseded loads are dropped and Finish returns false. A failure keeps
// whatever collection was already stored.
func (l *Loader[T]) Finish(ticket Ticket, data []T, err error) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if ticket != l.gen {
		return false
	}
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}

	if err != nil {
		l.failed = true
		l.err = err
		l.status = Failed
		return true
	}

	stored := slices.Clone(data)
	if stored == nil {
		stored = []T{}
	}
	if l.transform != nil {
		stored = l.transform(stored)
	}
	l.data = stored
	l.present = true
	l.failed = false
	l.err = nil
	l.status = Loaded

	return true
}

// Load performs Begin, Fetch and Finish in sequence and returns the fetch error
func (l *Loader[T]) Load(ctx context.Context) error {
	ticket, fetchCtx := l.Begin(ctx)
	data, err := l.Fetch(fetchCtx)
	l.Finish(ticket, data, err)
	return err
}

// Apply rewrites the stored collection in place. It does nothing while the
// collection is absent.
func (l *Loader[T]) Apply(fn func([]T) []T) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.present {
		return
	}
	l.data = fn(l.data)
}

// Close cancels the in-flight load and drops its eventual outcome
func (l *Loader[T]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.gen++
	if l.status == Loading {
		l.status = NotLoaded
		if l.present {
			l.status = Loaded
		}
	}
}

// Snapshot returns a copy of the current state
func (l *Loader[T]) Snapshot() Snapshot[T] {
	l.mu.Lock()
	defer l.mu.Unlock()

	return Snapshot[T]{
		Status:  l.status,
		Data:    slices.Clone(l.data),
		Present: l.present,
		Failed:  l.failed,
		Err:     l.err,
	}
}
