package common

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
	"gopkg.in/yaml.v3"
)

var configFs afero.Fs = afero.NewOsFs()

func NewConfigSourceFromFlagFunc(flag string) func(cCtx *cli.Context) (altsrc.InputSourceContext, error) {
	return func(cCtx *cli.Context) (altsrc.InputSourceContext, error) {
		if path := cCtx.String(flag); path != "" {
			return NewConfigInputSource(configFs, path)
		}

		return altsrc.NewMapInputSource("", map[any]any{}), nil
	}
}

// NewConfigInputSource reads flag values from a YAML or JSON file.
func NewConfigInputSource(fs afero.Fs, path string) (altsrc.InputSourceContext, error) {
	ext := filepath.Ext(path)
	switch ext {
	case ".json", ".yaml", ".yml":
	default:
		return nil, errors.Errorf("no parser associated with '%s' file extension", ext)
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read config file '%s'", path)
	}

	var values map[any]any

	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, errors.Wrapf(err, "could not parse config file '%s'", path)
	}

	if values == nil {
		values = map[any]any{}
	}

	return altsrc.NewMapInputSource(path, values), nil
}
