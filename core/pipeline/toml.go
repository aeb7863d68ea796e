package pipeline

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// decodeTOML reads the document as a generic table and picks the modelled
// keys by exact name. go-toml falls back to case-insensitive matching when
// decoding into structs, which would accept "Type" for "type".
func decodeTOML(data []byte) (*rawConfig, error) {
	var top map[string]any
	if err := toml.Unmarshal(data, &top); err != nil {
		return nil, err
	}

	raw := &rawConfig{
		API:        top["api"],
		Enterprise: top["enterprise"],
	}
	var err error
	if raw.Sources, err = tomlSection(top, SectionSources); err != nil {
		return nil, err
	}
	if raw.Transforms, err = tomlSection(top, SectionTransforms); err != nil {
		return nil, err
	}
	if raw.Sinks, err = tomlSection(top, SectionSinks); err != nil {
		return nil, err
	}
	return raw, nil
}

func tomlSection(top map[string]any, section Section) (map[string]*rawComponent, error) {
	v, ok := top[string(section)]
	if !ok {
		return nil, nil
	}
	table, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected a table, found %T", section, v)
	}

	components := make(map[string]*rawComponent, len(table))
	for name, entry := range table {
		fields, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s.%s: expected a table, found %T", section, name, entry)
		}

		rc := &rawComponent{}
		if typ, ok := fields["type"]; ok {
			s, ok := typ.(string)
			if !ok {
				return nil, fmt.Errorf("%s.%s: field `type` must be a string, found %T", section, name, typ)
			}
			rc.Type = &s
		}
		components[name] = rc
	}
	return components, nil
}
