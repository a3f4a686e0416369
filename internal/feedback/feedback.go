// Package feedback delivers user feedback cues (taps, outcomes) to whatever
// the host terminal or device can produce.
package feedback

import (
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"
)

// Kind is the category of a feedback cue
type Kind int

const (
	Light Kind = iota
	Selection
	Rigid
	Warning
	Success
	Error
)

func (k Kind) String() string {
	switch k {
	case Light:
		return "light"
	case Selection:
		return "selection"
	case Rigid:
		return "rigid"
	case Warning:
		return "warning"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Generator produces feedback cues. Prepare warms up for an imminent cue;
// Generate emits it. Implementations must be safe for concurrent use.
type Generator interface {
	Prepare(kind Kind)
	Generate(kind Kind)
}

// Nop discards every cue
type Nop struct{}

func (Nop) Prepare(Kind)  {}
func (Nop) Generate(Kind) {}

// Bell rings the terminal bell for warnings and errors
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell creates a bell writing to w
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

func (b *Bell) Prepare(Kind) {}

func (b *Bell) Generate(kind Kind) {
	if kind != Warning && kind != Error {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	_, _ = b.w.Write([]byte{'\a'})
}

// Logging records cues at debug level
type Logging struct {
	log zerolog.Logger
}

// NewLogging creates a generator that logs every cue
func NewLogging(log zerolog.Logger) *Logging {
	return &Logging{log: log.With().Str("component", "feedback").Logger()}
}

func (l *Logging) Prepare(kind Kind) {
	l.log.Debug().Str("kind", kind.String()).Msg("Feedback prepared")
}

func (l *Logging) Generate(kind Kind) {
	l.log.Debug().Str("kind", kind.String()).Msg("Feedback generated")
}

// Multi fans a cue out to several generators in order
type Multi []Generator

func (m Multi) Prepare(kind Kind) {
	for _, g := range m {
		g.Prepare(kind)
	}
}

func (m Multi) Generate(kind Kind) {
	for _, g := range m {
		g.Generate(kind)
	}
}
