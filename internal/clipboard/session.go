package clipboard

import (
	"context"
	"fmt"
	"time"

	kerrors "github.com/PolarWolf314/rvault/internal/errors"
)

// DefaultWindow is how long a copied secret stays on the clipboard.
const DefaultWindow = 10 * time.Second

// State of an exposure session. Sessions only move forward.
type State int

const (
	StateIdle State = iota
	StateExposed
	StateCleared
)

func (s State) String() string {
	switch s {
	case StateExposed:
		return "exposed"
	case StateCleared:
		return "cleared"
	default:
		return "idle"
	}
}

// EventKind classifies input observed while a secret is exposed.
type EventKind int

const (
	// EventKey is a key press; it ends the exposure early.
	EventKey EventKind = iota
	// EventOther is any other input; the wait resumes with the remaining budget.
	EventOther
)

// Event is input observed during the exposure window. A non-nil Err means
// the input source failed and the window ends.
type Event struct {
	Kind EventKind
	Err  error
}

// Reason explains why the exposure window ended.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonTimeout
	ReasonKeyPress
	ReasonInputError
	ReasonInterrupted
)

func (r Reason) String() string {
	switch r {
	case ReasonTimeout:
		return "timeout"
	case ReasonKeyPress:
		return "key press"
	case ReasonInputError:
		return "input error"
	case ReasonInterrupted:
		return "interrupted"
	default:
		return "none"
	}
}

// Outcome describes a finished exposure.
type Outcome struct {
	Reason  Reason
	Elapsed time.Duration
	// ClearErr is set when clearing the clipboard failed. The exposure
	// itself still counts as successful.
	ClearErr error
}

// Session copies one secret to the clipboard and clears it after a bounded,
// cancellable wait. A session is single use.
type Session struct {
	Clipboard Clipboard
	Window    time.Duration
	Clock     Clock

	state State
}

// NewSession returns an idle session. A non-positive window uses DefaultWindow.
func NewSession(cb Clipboard, window time.Duration) *Session {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Session{Clipboard: cb, Window: window, Clock: realClock{}}
}

// State reports where the session is in its lifecycle.
func (s *Session) State() State {
	return s.state
}

// Expose writes secret to the clipboard, waits until the window elapses, a
// key event arrives or ctx is done, and then clears the clipboard. The clear
// runs exactly once on every path, including a failed write.
//
// Returns ErrClipboardUnavailable if the secret could not be written and
// ErrSessionUsed if the session already ran.
func (s *Session) Expose(ctx context.Context, secret string, events <-chan Event) (out Outcome, err error) {
	if s.state != StateIdle {
		return out, kerrors.ErrSessionUsed
	}
	clock := s.clock()
	start := clock.Now()
	s.state = StateExposed

	defer func() {
		if clearErr := s.Clipboard.WriteAll(""); clearErr != nil {
			out.ClearErr = fmt.Errorf("clearing clipboard: %w", clearErr)
		}
		out.Elapsed = clock.Now().Sub(start)
		s.state = StateCleared
	}()

	if err := s.Clipboard.WriteAll(secret); err != nil {
		return out, fmt.Errorf("%w: %w", kerrors.ErrClipboardUnavailable, err)
	}

	out.Reason = s.wait(ctx, clock, start, events)
	return out, nil
}

// wait blocks for at most the remaining budget per iteration. Events that
// are not key presses only restart the iteration.
func (s *Session) wait(ctx context.Context, clock Clock, start time.Time, events <-chan Event) Reason {
	for {
		remaining := s.window() - clock.Now().Sub(start)
		if remaining <= 0 {
			return ReasonTimeout
		}

		select {
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if ev.Err != nil {
				return ReasonInputError
			}
			if ev.Kind == EventKey {
				return ReasonKeyPress
			}
		case <-clock.After(remaining):
			return ReasonTimeout
		case <-ctx.Done():
			return ReasonInterrupted
		}
	}
}

func (s *Session) clock() Clock {
	if s.Clock == nil {
		return realClock{}
	}
	return s.Clock
}

func (s *Session) window() time.Duration {
	if s.Window <= 0 {
		return DefaultWindow
	}
	return s.Window
}
