package service

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/bornholm/zerohost/internal/core/model"
	"github.com/bornholm/zerohost/internal/core/port"
	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

type ContentRequest struct {
	Text        string
	File        string
	Interactive bool
}

// ContentResolver picks the payload to share from, in order: the text
// argument, a file, piped standard input and finally the editor prompt.
type ContentResolver struct {
	fs         afero.Fs
	stdin      io.Reader
	isTerminal func() bool
	prompter   port.Prompter
	stdinGuard time.Duration
}

func (r *ContentResolver) Resolve(ctx context.Context, req ContentRequest) (string, error) {
	if req.Text != "" {
		slog.DebugContext(ctx, "using content from argument")
		return req.Text, nil
	}

	if req.File != "" {
		content, err := r.readFile(ctx, req.File)
		if err != nil {
			return "", errors.WithStack(err)
		}

		return content, nil
	}

	if r.stdin != nil && !r.isTerminal() {
		content, err := drainStream(ctx, r.stdin, r.stdinGuard)
		if err != nil {
			return "", errors.WithStack(err)
		}

		slog.DebugContext(ctx, "using content from standard input", slog.String("size", humanize.Bytes(uint64(len(content)))))

		return content, nil
	}

	if !req.Interactive {
		return "", errors.WithStack(ErrNoContentProvided)
	}

	answers, err := r.prompter.Ask(ctx, port.Question{
		Name:     "content",
		Kind:     port.QuestionEditor,
		Message:  "Enter content to share (opens editor):",
		Validate: port.NotBlank("Content cannot be empty"),
	})
	if err != nil {
		return "", errors.WithStack(err)
	}

	return answers.String("content"), nil
}

func (r *ContentResolver) readFile(ctx context.Context, path string) (string, error) {
	exists, err := afero.Exists(r.fs, path)
	if err != nil {
		return "", errors.WithStack(err)
	}

	if !exists {
		return "", errors.WithStack(&PathError{Path: path, Err: ErrFileNotFound})
	}

	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return "", errors.Wrapf(err, "could not read file '%s'", path)
	}

	mtype := mimetype.Detect(data)
	if !isText(mtype) {
		return "", errors.WithStack(&PathError{Path: path, Detail: mtype.String(), Err: ErrNotText})
	}

	slog.DebugContext(ctx, "using content from file",
		slog.String("path", path),
		slog.String("mimetype", mtype.String()),
		slog.String("size", humanize.Bytes(uint64(len(data)))),
		slog.String("preview", model.TruncateText(string(data), 40)),
	)

	return string(data), nil
}

func isText(mtype *mimetype.MIME) bool {
	for m := mtype; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}

	return false
}

type ContentResolverOptions struct {
	Fs         afero.Fs
	Stdin      io.Reader
	IsTerminal func() bool
	StdinGuard time.Duration
}

type ContentResolverOptionFunc func(opts *ContentResolverOptions)

func WithFs(fs afero.Fs) ContentResolverOptionFunc {
	return func(opts *ContentResolverOptions) {
		opts.Fs = fs
	}
}

// WithStdin sets the stream read when no other source is available.
// isTerminal reports whether that stream is attached to an interactive
// terminal, in which case it is skipped.
func WithStdin(stdin io.Reader, isTerminal func() bool) ContentResolverOptionFunc {
	return func(opts *ContentResolverOptions) {
		opts.Stdin = stdin
		opts.IsTerminal = isTerminal
	}
}

func WithStdinGuard(guard time.Duration) ContentResolverOptionFunc {
	return func(opts *ContentResolverOptions) {
		opts.StdinGuard = guard
	}
}

func NewContentResolverOptions(funcs ...ContentResolverOptionFunc) *ContentResolverOptions {
	opts := &ContentResolverOptions{
		Fs:    afero.NewOsFs(),
		Stdin: os.Stdin,
		IsTerminal: func() bool {
			return true
		},
		StdinGuard: DefaultStdinGuard,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func NewContentResolver(prompter port.Prompter, funcs ...ContentResolverOptionFunc) *ContentResolver {
	opts := NewContentResolverOptions(funcs...)
	return &ContentResolver{
		fs:         opts.Fs,
		stdin:      opts.Stdin,
		isTerminal: opts.IsTerminal,
		prompter:   prompter,
		stdinGuard: opts.StdinGuard,
	}
}

// IsBlank reports whether the content holds nothing but whitespace.
func IsBlank(content string) bool {
	return strings.TrimSpace(content) == ""
}
