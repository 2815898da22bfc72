package clipboard

import (
	"github.com/atotto/clipboard"
	"github.com/bornholm/zerohost/internal/core/port"
	"github.com/pkg/errors"
)

var ErrUnsupported = errors.New("clipboard is not supported on this system")

// System writes to the operating system clipboard.
type System struct{}

// WriteText implements port.Clipboard.
func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return errors.WithStack(ErrUnsupported)
	}

	if err := clipboard.WriteAll(text); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

var _ port.Clipboard = System{}
