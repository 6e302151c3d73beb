package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	kerrors "github.com/PolarWolf314/rvault/internal/errors"
)

// Clipboard is the shared system resource a secret is exposed through.
// Writing the empty string clears it.
type Clipboard interface {
	WriteAll(text string) error
}

// System is the desktop clipboard.
type System struct{}

func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("%w: no clipboard utilities available", kerrors.ErrClipboardUnavailable)
	}
	return clipboard.WriteAll(text)
}
