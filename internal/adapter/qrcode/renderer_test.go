package qrcode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestHalfBlockRenderer(t *testing.T) {
	var buff bytes.Buffer

	renderer := HalfBlockRenderer{}

	if err := renderer.Render(&buff, "https://zerohost.net/abc123"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	lines := strings.Split(strings.TrimRight(buff.String(), "\n"), "\n")
	if len(lines) < 10 {
		t.Errorf("len(lines): expected at least 10 lines, got %d", len(lines))
	}

	if err := renderer.Render(&buff, ""); !errors.Is(err, ErrEmptyContent) {
		t.Errorf("Render(\"\"): expected ErrEmptyContent, got %v", err)
	}
}
