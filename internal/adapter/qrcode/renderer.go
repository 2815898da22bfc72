package qrcode

import (
	"io"

	"github.com/bornholm/zerohost/internal/core/port"
	"github.com/mdp/qrterminal/v3"
	"github.com/pkg/errors"
)

var ErrEmptyContent = errors.New("qr code content cannot be empty")

// HalfBlockRenderer draws compact QR codes with unicode half blocks, two
// modules per character cell.
type HalfBlockRenderer struct{}

// Render implements port.QRCodeRenderer.
func (HalfBlockRenderer) Render(w io.Writer, content string) error {
	if content == "" {
		return errors.WithStack(ErrEmptyContent)
	}

	qrterminal.GenerateHalfBlock(content, qrterminal.L, w)

	return nil
}

var _ port.QRCodeRenderer = HalfBlockRenderer{}
