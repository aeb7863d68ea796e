// Package pipeline provides the typed model of a pipeline configuration file.
//
// Only the parts of the configuration that decide which features are needed
// are decoded: the presence of the top-level `api` and `enterprise` blocks, and
// the `type` tag of every component under `sources`, `transforms` and `sinks`.
// Everything else in the file is skipped, so richer real-world configs decode
// without changes here.
//
// # Formats
//
// The decoder is selected from the file extension (case-insensitive):
//   - .json: goccy/go-json
//   - .toml: pelletier/go-toml/v2
//   - .yaml, .yml: gopkg.in/yaml.v3
//
// # Usage
//
//	format, err := pipeline.FormatFromPath("vector.toml")
//	if err != nil {
//	    return err
//	}
//	cfg, err := pipeline.Decode(format, data)
package pipeline
