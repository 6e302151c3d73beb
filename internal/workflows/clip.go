package workflows

import (
	"context"
	"time"

	"github.com/PolarWolf314/rvault/internal/audit"
	"github.com/PolarWolf314/rvault/internal/clipboard"
)

// ClipOptions configures the clip workflow.
type ClipOptions struct {
	Name string

	// Session exposes the value. It must be idle. nil uses the system
	// clipboard with the default window.
	Session *clipboard.Session

	// Events ends the exposure early on a key press. nil waits for the
	// full window or for ctx.
	Events <-chan clipboard.Event

	// Listen opens a key event source when Events is nil. It runs after
	// decryption so passphrase prompts still see a cooked terminal. The
	// returned stop func runs once the clipboard is cleared.
	Listen func() (<-chan clipboard.Event, func(), error)

	// Exposing runs after decryption, just before the value is copied.
	Exposing func(*ShowResult)
}

// ClipResult contains the outcome of a clip operation.
type ClipResult struct {
	Show    *ShowResult
	Outcome clipboard.Outcome
}

// Clip decrypts a record and keeps its value on the clipboard for the
// session's window. OTP records copy the current code.
//
// Returns the errors of Show, plus ErrClipboardUnavailable if the value
// could not be copied. A failure to clear afterwards is reported in
// Outcome.ClearErr.
func Clip(ctx context.Context, env *Env, opts ClipOptions) (*ClipResult, error) {
	shown, err := reveal(ctx, env, opts.Name)
	if err != nil {
		return nil, err
	}
	if opts.Exposing != nil {
		opts.Exposing(shown)
	}

	session := opts.Session
	if session == nil {
		session = clipboard.NewSession(clipboard.System{}, clipboard.DefaultWindow)
	}
	events := opts.Events
	if events == nil && opts.Listen != nil {
		listened, stop, err := opts.Listen()
		if err != nil {
			env.Logger.Debugf("Key presses will not end the exposure: %v", err)
		} else {
			defer stop()
			events = listened
		}
	}

	outcome, err := session.Expose(ctx, shown.Value, events)
	if err != nil {
		return nil, err
	}
	env.Logger.Infof("Clipboard cleared after %s (%s)", outcome.Elapsed.Round(time.Millisecond), outcome.Reason)

	env.audit(audit.Entry{Operation: audit.OpClip, Name: opts.Name})
	return &ClipResult{Show: shown, Outcome: outcome}, nil
}
