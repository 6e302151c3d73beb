// Package clipboard exposes a secret on the system clipboard for a bounded time.
//
// A Session moves from idle to exposed to cleared and is used once:
//
//	session := clipboard.NewSession(clipboard.System{}, 10*time.Second)
//	events, stop, err := clipboard.TTYEvents()
//	outcome, err := session.Expose(ctx, secret, events)
//	stop()
//
// The exposure ends when the window elapses or a key is pressed, and also when
// the context is cancelled. Whatever the path, the clipboard is cleared exactly once. A
// failure to clear is reported in Outcome.ClearErr rather than as an error,
// because the secret was already delivered.
//
// Only one session exists per invocation, so the clipboard is not locked.
package clipboard
