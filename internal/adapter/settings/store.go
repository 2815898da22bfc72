package settings

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/bornholm/go-x/slogx"
	"github.com/kirsle/configdir"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const AppName = "zerohost-cli"

// Store persists a JSON document of type T in the user configuration
// directory. Writes go through a temporary file renamed over the target.
// Reads always hit the file, another process may have changed it.
type Store[T any] struct {
	fs       afero.Fs
	defaults T
	mutex    sync.RWMutex
	dir      string
	filename string
}

func (s *Store[T]) Save(settings T) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := s.ensureDir(); err != nil {
		return errors.WithStack(err)
	}

	path := s.Path()
	tmpPath := path + "-new"

	file, err := s.fs.OpenFile(tmpPath, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0600)
	if err != nil {
		return errors.WithStack(err)
	}

	closed := false

	defer func() {
		if !closed {
			if err := file.Close(); err != nil {
				slog.Error("could not close settings file", slogx.Error(errors.WithStack(err)))
			}
		}

		if err := s.fs.Remove(tmpPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			slog.Error("could not remove temporary settings file", slogx.Error(errors.WithStack(err)))
		}
	}()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(settings); err != nil {
		return errors.WithStack(err)
	}

	closed = true

	if err := file.Close(); err != nil {
		return errors.WithStack(err)
	}

	if err := s.fs.Rename(tmpPath, path); err != nil {
		return errors.Wrap(err, "could not overwrite settings")
	}

	return nil
}

// Get reads the settings file. A missing file yields the defaults.
func (s *Store[T]) Get() (T, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	file, err := s.fs.Open(s.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s.defaults, nil
		}

		return s.defaults, errors.WithStack(err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("could not close settings file", slogx.Error(errors.WithStack(err)))
		}
	}()

	decoder := json.NewDecoder(file)

	var settings T
	if err := decoder.Decode(&settings); err != nil {
		return s.defaults, errors.Wrapf(err, "could not decode settings file '%s'", s.Path())
	}

	return settings, nil
}

func (s *Store[T]) ensureDir() error {
	if err := s.fs.MkdirAll(s.dir, 0700); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (s *Store[T]) Path() string {
	return filepath.Join(s.dir, s.filename)
}

type Options struct {
	Fs       afero.Fs
	Dir      string
	Filename string
}

type OptionFunc func(opts *Options)

func WithFs(fs afero.Fs) OptionFunc {
	return func(opts *Options) {
		opts.Fs = fs
	}
}

func WithDir(dir string) OptionFunc {
	return func(opts *Options) {
		opts.Dir = dir
	}
}

func WithFilename(filename string) OptionFunc {
	return func(opts *Options) {
		opts.Filename = filename
	}
}

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Fs:       afero.NewOsFs(),
		Dir:      configdir.LocalConfig(AppName),
		Filename: "config.json",
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func NewStore[T any](defaults T, funcs ...OptionFunc) *Store[T] {
	opts := NewOptions(funcs...)
	return &Store[T]{
		fs:       opts.Fs,
		defaults: defaults,
		dir:      opts.Dir,
		filename: opts.Filename,
	}
}
