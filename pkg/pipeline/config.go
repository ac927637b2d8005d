package pipeline

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/boxkit/boxkit/pkg/errors"
)

// LoadConfig reads pipeline options from a TOML file. Keys mirror the
// Options field tags:
//
//	input = "data.json"
//	title = "Response Times"
//	units = "ms"
//	whisker_k = 1.5
//	width = 800
//	height = 600
//	ticks_min = 4
//	ticks_max = 10
//	formats = ["svg", "png"]
//	style = "classic"
//
// Fields omitted from the file keep their zero value and pick up pipeline
// defaults later; flags layered on top of the returned Options win.
func LoadConfig(path string) (Options, error) {
	var opts Options
	meta, err := toml.DecodeFile(path, &opts)
	if err != nil {
		if os.IsNotExist(err) {
			return Options{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open config %s", path)
		}
		return Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Options{}, errors.New(errors.ErrCodeInvalidConfig,
			"unknown config key %q in %s", undecoded[0].String(), path)
	}
	return opts, nil
}
