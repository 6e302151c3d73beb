package clipboard

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/PolarWolf314/rvault/internal/utils"
)

// TTYEvents reports key presses on the controlling terminal. The terminal is
// put into raw mode so any key counts; stop restores it and must be called
// once the exposure is over.
func TTYEvents() (events <-chan Event, stop func(), err error) {
	ttyPath := utils.TTYPath()
	tty, err := os.Open(ttyPath)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open %s for reading: %w", ttyPath, err)
	}

	fd := int(tty.Fd())
	if !term.IsTerminal(fd) {
		tty.Close()
		return nil, nil, fmt.Errorf("%s is not a terminal", ttyPath)
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		tty.Close()
		return nil, nil, fmt.Errorf("failed to enter raw mode: %w", err)
	}

	ch := make(chan Event, 1)
	go func() {
		buf := make([]byte, 1)
		for {
			n, err := tty.Read(buf)
			if err != nil {
				select {
				case ch <- Event{Err: err}:
				default:
				}
				return
			}
			if n > 0 {
				select {
				case ch <- Event{Kind: EventKey}:
				default:
				}
			}
		}
	}()

	stop = func() {
		_ = term.Restore(fd, state)
		tty.Close()
	}
	return ch, stop, nil
}
