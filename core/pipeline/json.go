package pipeline

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// decodeJSON extracts the modelled keys from a JSON document. Objects are
// first read as raw messages so that keys match exactly; struct decoding
// would also accept "API" for "api".
func decodeJSON(data []byte) (*rawConfig, error) {
	if isJSONNull(data) {
		return nil, errors.New("expected an object at top level, found null")
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, err
	}

	raw := &rawConfig{}
	var err error
	if raw.API, err = jsonOptional(top, "api"); err != nil {
		return nil, err
	}
	if raw.Enterprise, err = jsonOptional(top, "enterprise"); err != nil {
		return nil, err
	}
	if raw.Sources, err = jsonSection(top, SectionSources); err != nil {
		return nil, err
	}
	if raw.Transforms, err = jsonSection(top, SectionTransforms); err != nil {
		return nil, err
	}
	if raw.Sinks, err = jsonSection(top, SectionSinks); err != nil {
		return nil, err
	}
	return raw, nil
}

// jsonOptional decodes top[key]; absent and null both yield nil.
func jsonOptional(top map[string]json.RawMessage, key string) (any, error) {
	msg, ok := top[key]
	if !ok || isJSONNull(msg) {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal(msg, &v); err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func jsonSection(top map[string]json.RawMessage, section Section) (map[string]*rawComponent, error) {
	msg, ok := top[string(section)]
	if !ok || isJSONNull(msg) {
		return nil, nil
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(msg, &entries); err != nil {
		return nil, fmt.Errorf("%s: %w", section, err)
	}

	components := make(map[string]*rawComponent, len(entries))
	for name, entry := range entries {
		if isJSONNull(entry) {
			components[name] = nil
			continue
		}

		var fields map[string]json.RawMessage
		if err := json.Unmarshal(entry, &fields); err != nil {
			return nil, fmt.Errorf("%s.%s: %w", section, name, err)
		}

		rc := &rawComponent{}
		if typ, ok := fields["type"]; ok && !isJSONNull(typ) {
			var s string
			if err := json.Unmarshal(typ, &s); err != nil {
				return nil, fmt.Errorf("%s.%s: field `type` must be a string: %w", section, name, err)
			}
			rc.Type = &s
		}
		components[name] = rc
	}
	return components, nil
}

func isJSONNull(msg []byte) bool {
	return bytes.Equal(bytes.TrimSpace(msg), []byte("null"))
}
