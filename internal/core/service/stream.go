package service

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const DefaultStdinGuard = 100 * time.Millisecond

type streamEvent struct {
	data []byte
	end  bool
	err  error
}

// drainStream reads r until EOF and returns the concatenated chunks. If
// neither data nor EOF arrives before the guard expires, it gives up and
// returns an empty string. The guard is disarmed by the first event, so slow
// producers are never truncated.
func drainStream(ctx context.Context, r io.Reader, guard time.Duration) (string, error) {
	events := make(chan streamEvent)
	done := make(chan struct{})
	defer close(done)

	go func() {
		buff := make([]byte, 32*1024)
		for {
			n, err := r.Read(buff)
			if n > 0 {
				chunk := make([]byte, n)
				copy(chunk, buff[:n])

				select {
				case events <- streamEvent{data: chunk}:
				case <-done:
					return
				}
			}

			if err != nil {
				if errors.Is(err, io.EOF) {
					err = nil
				}

				select {
				case events <- streamEvent{end: true, err: err}:
				case <-done:
				}

				return
			}
		}
	}()

	timer := time.NewTimer(guard)
	defer timer.Stop()

	guardC := timer.C

	var sb strings.Builder

	for {
		var ev streamEvent

		select {
		case <-ctx.Done():
			return "", errors.WithStack(ctx.Err())

		case <-guardC:
			guardC = nil

			// An event may be pending at the very moment the guard fires
			select {
			case ev = <-events:
			default:
				return "", nil
			}

		case ev = <-events:
		}

		if guardC != nil {
			timer.Stop()
			guardC = nil
		}

		if ev.data != nil {
			sb.Write(ev.data)
		}

		if ev.end {
			if ev.err != nil {
				return "", errors.Wrap(ev.err, "could not read standard input")
			}

			return sb.String(), nil
		}
	}
}
