package pipeline

import (
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"
)

// Format is a supported configuration file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

var (
	// ErrNoExtension is returned when the file name carries no extension.
	ErrNoExtension = errors.New("no extension")
	// ErrUnknownExtension is returned for extensions other than json, toml, yaml and yml.
	ErrUnknownExtension = errors.New("unknown extension")
)

// MissingTypeError reports a component declared without a `type` field.
type MissingTypeError struct {
	Section Section
	Name    string
}

func (e *MissingTypeError) Error() string {
	return fmt.Sprintf("%s.%s: missing field `type`", e.Section, e.Name)
}

// FormatFromPath selects the decoding format from the extension of path.
// A leading dot alone (".json") is a hidden file name, not an extension.
func FormatFromPath(path string) (Format, error) {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == "" || ext == base {
		return "", ErrNoExtension
	}

	switch strings.ToLower(ext[1:]) {
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", ErrUnknownExtension
	}
}

// rawComponent keeps Type as a pointer so an absent key can be told apart
// from an empty string.
type rawComponent struct {
	Type *string
}

// rawConfig is filled by the per-format decoders. Keys are always matched
// exactly: "API" or "Type" are unknown fields, not aliases.
type rawConfig struct {
	API        any                      `yaml:"api"`
	Enterprise any                      `yaml:"enterprise"`
	Sources    map[string]*rawComponent `yaml:"sources"`
	Transforms map[string]*rawComponent `yaml:"transforms"`
	Sinks      map[string]*rawComponent `yaml:"sinks"`
}

// Decode parses data in the given format into a Config.
// Fields other than the ones modelled by Config are ignored.
func Decode(format Format, data []byte) (*Config, error) {
	var (
		raw *rawConfig
		err error
	)
	switch format {
	case FormatJSON:
		raw, err = decodeJSON(data)
	case FormatTOML:
		raw, err = decodeTOML(data)
	case FormatYAML:
		raw, err = decodeYAML(data)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", format, err)
	}

	cfg := &Config{
		API:        raw.API,
		Enterprise: raw.Enterprise,
	}
	if cfg.Sources, err = convertSection(SectionSources, raw.Sources); err != nil {
		return nil, err
	}
	if cfg.Transforms, err = convertSection(SectionTransforms, raw.Transforms); err != nil {
		return nil, err
	}
	if cfg.Sinks, err = convertSection(SectionSinks, raw.Sinks); err != nil {
		return nil, err
	}

	return cfg, nil
}

// convertSection walks names in sorted order so the reported component is
// stable when several lack a type.
func convertSection(section Section, raw map[string]*rawComponent) (ComponentMap, error) {
	components := make(ComponentMap, len(raw))
	for _, name := range slices.Sorted(maps.Keys(raw)) {
		rc := raw[name]
		if rc == nil || rc.Type == nil {
			return nil, &MissingTypeError{Section: section, Name: name}
		}
		components[name] = Component{Type: *rc.Type}
	}
	return components, nil
}
