package port

import "io"

type QRCodeRenderer interface {
	Render(w io.Writer, content string) error
}
