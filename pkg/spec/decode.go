package spec

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a YAML form spec document.
func ParseYAML(data []byte) (FormSpec, error) {
	var out FormSpec
	if err := yaml.Unmarshal(data, &out); err != nil {
		return FormSpec{}, fmt.Errorf("spec: parse yaml: %w", err)
	}
	return out, nil
}

// ParseJSON decodes a JSON form spec document.
func ParseJSON(data []byte) (FormSpec, error) {
	var out FormSpec
	if err := json.Unmarshal(data, &out); err != nil {
		return FormSpec{}, fmt.Errorf("spec: parse json: %w", err)
	}
	return out, nil
}

// FromMap decodes an already-parsed nested mapping into a FormSpec. Go maps
// carry no document order, so directives supplied this way are ordered by
// sorted kind to keep composed normalizations deterministic; callers who
// need a specific order should decode from YAML/JSON or build the Directives
// slice directly.
func FromMap(raw map[string]any) (FormSpec, error) {
	var out FormSpec
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &out,
		TagName:    "json",
		DecodeHook: directivesFromMapHook,
	})
	if err != nil {
		return FormSpec{}, fmt.Errorf("spec: decode map: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return FormSpec{}, fmt.Errorf("spec: decode map: %w", err)
	}
	return out, nil
}

var directivesType = reflect.TypeOf(Directives(nil))

func directivesFromMapHook(from, to reflect.Type, data any) (any, error) {
	if to != directivesType {
		return data, nil
	}
	raw, ok := data.(map[string]any)
	if !ok {
		return data, nil
	}
	kinds := make([]string, 0, len(raw))
	for kind := range raw {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	out := make(Directives, 0, len(kinds))
	for _, kind := range kinds {
		out = append(out, Directive{Kind: kind, Arg: raw[kind]})
	}
	return out, nil
}
