package pipeline

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/blobposter/pkg/errors"
)

// LoadOptionsFile reads poster options from a TOML file. Keys missing from
// the file keep their DefaultOptions values. Unknown keys are rejected.
//
//	layers = 12
//	seed = 7
//	palette = "Cool Blues"
//	style = "Vivid"
//	wobble_min = 0.1
//	formats = ["svg", "png"]
func LoadOptionsFile(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	return ParseOptions(string(data))
}

// ParseOptions decodes TOML poster options on top of DefaultOptions.
func ParseOptions(data string) (Options, error) {
	opts := DefaultOptions()
	md, err := toml.Decode(data, &opts)
	if err != nil {
		return Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Options{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	return opts, nil
}
