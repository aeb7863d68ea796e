package features

import (
	"errors"
	"os"

	"pipeline-features/core/pipeline"
)

// LoadAndExtract reads the pipeline configuration at path and returns the
// features it requires. The format is chosen from the file extension.
func LoadAndExtract(path string) ([]string, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	return Derive(cfg), nil
}

// Load reads and decodes the pipeline configuration at path.
func Load(path string) (*pipeline.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newError(KindIO, path, "failed to read", err)
	}

	format, err := pipeline.FormatFromPath(path)
	if err != nil {
		return nil, newError(KindInvalidInput, path, "invalid filename", err)
	}

	cfg, err := pipeline.Decode(format, data)
	if err != nil {
		var missing *pipeline.MissingTypeError
		if errors.As(err, &missing) {
			return nil, newError(KindParse, path, "component without type", err)
		}
		return nil, newError(KindParse, path, "failed to parse", err)
	}

	return cfg, nil
}
