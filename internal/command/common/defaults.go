package common

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
	"gopkg.in/yaml.v3"
)

// NewDefaultsSourceFromFlagFunc loads flag default values from the file named
// by the given flag. Without the flag, an empty source is returned.
func NewDefaultsSourceFromFlagFunc(fs afero.Fs, flag string) func(cCtx *cli.Context) (altsrc.InputSourceContext, error) {
	return func(cCtx *cli.Context) (altsrc.InputSourceContext, error) {
		if path := cCtx.String(flag); path != "" {
			return NewDefaultsInputSource(fs, path)
		}

		return altsrc.NewMapInputSource("", map[any]any{}), nil
	}
}

func NewDefaultsInputSource(fs afero.Fs, path string) (altsrc.InputSourceContext, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read defaults file '%s'", path)
	}

	ext := filepath.Ext(path)
	switch ext {
	case ".json":
		fallthrough
	case ".yaml":
		fallthrough
	case ".yml":
		values := map[any]any{}

		if err := yaml.Unmarshal(data, &values); err != nil {
			return nil, errors.Wrapf(err, "could not parse defaults file '%s'", path)
		}

		return altsrc.NewMapInputSource(path, values), nil

	default:
		return nil, errors.Errorf("no parser associated with '%s' file extension", ext)
	}
}
