package pipeline

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// decodeYAML decodes a YAML document. yaml.v3 matches struct keys exactly.
// An empty document is an empty configuration, like an empty TOML file.
func decodeYAML(data []byte) (*rawConfig, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	raw := &rawConfig{}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return raw, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping at top level, found %s", root.Line, root.ShortTag())
	}
	if err := root.Decode(raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// UnmarshalYAML only accepts a string scalar for `type`; plain struct
// decoding would turn `type: 42` into "42". A null component never reaches
// here and stays a nil pointer.
func (c *rawComponent) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping, found %s", node.Line, node.ShortTag())
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode || key.Value != "type" {
			continue
		}
		if value.Kind == yaml.AliasNode && value.Alias != nil {
			value = value.Alias
		}
		if value.ShortTag() == "!!null" {
			continue
		}
		if value.Kind != yaml.ScalarNode || value.ShortTag() != "!!str" {
			return fmt.Errorf("line %d: field `type` must be a string, found %s", value.Line, value.ShortTag())
		}
		s := value.Value
		c.Type = &s
	}
	return nil
}
