package adapt

import (
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-mustache/pkg/boxing"
)

// FromJSON decodes a JSON document and boxes it through the registry.
func (r *Registry) FromJSON(data []byte) (boxing.Box, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return boxing.Box{}, fmt.Errorf("adapt: parse json: %w", err)
	}
	return r.BoxValue(doc)
}

// FromYAML decodes a YAML document and boxes it through the registry.
func (r *Registry) FromYAML(data []byte) (boxing.Box, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return boxing.Box{}, fmt.Errorf("adapt: parse yaml: %w", err)
	}
	return r.BoxValue(doc)
}

// FromTOML decodes a TOML document and boxes it through the registry.
func (r *Registry) FromTOML(data []byte) (boxing.Box, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return boxing.Box{}, fmt.Errorf("adapt: parse toml: %w", err)
	}
	return r.BoxValue(doc)
}

// FromJSON boxes a JSON document through the default registry.
func FromJSON(data []byte) (boxing.Box, error) {
	return Default().FromJSON(data)
}

// FromYAML boxes a YAML document through the default registry.
func FromYAML(data []byte) (boxing.Box, error) {
	return Default().FromYAML(data)
}

// FromTOML boxes a TOML document through the default registry.
func FromTOML(data []byte) (boxing.Box, error) {
	return Default().FromTOML(data)
}
