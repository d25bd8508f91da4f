package spec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Directive is one (kind, argument) pair describing a validation or
// normalization step.
type Directive struct {
	Kind string
	Arg  any
}

// Directives is an ordered directive list. Source documents express
// directives as a mapping, but the order entries appear in matters, so both
// decoders below read the mapping pair by pair instead of going through an
// unordered Go map.
type Directives []Directive

// Kinds returns the directive kinds in declaration order.
func (d Directives) Kinds() []string {
	kinds := make([]string, len(d))
	for i, directive := range d {
		kinds[i] = directive.Kind
	}
	return kinds
}

// UnmarshalYAML decodes a YAML mapping preserving document order. An
// explicit null means no directives.
func (d *Directives) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		*d = nil
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("spec: directives must be a mapping, got %s", yamlKind(node.Kind))
	}
	out := make(Directives, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var arg any
		if err := node.Content[i+1].Decode(&arg); err != nil {
			return fmt.Errorf("spec: directive %q: %w", node.Content[i].Value, err)
		}
		out = append(out, Directive{Kind: node.Content[i].Value, Arg: arg})
	}
	*d = out
	return nil
}

// MarshalYAML renders the directives back as a mapping in declaration order.
func (d Directives) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, directive := range d {
		key := &yaml.Node{Kind: yaml.ScalarNode, Value: directive.Kind}
		value := &yaml.Node{}
		if err := value.Encode(directive.Arg); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, key, value)
	}
	return node, nil
}

// UnmarshalJSON decodes a JSON object preserving document order by walking
// the decoder token stream. An explicit null means no directives.
func (d *Directives) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		*d = nil
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("spec: directives: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("spec: directives must be an object, got %v", tok)
	}
	var out Directives
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("spec: directives: %w", err)
		}
		kind, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("spec: directives: unexpected key token %v", keyTok)
		}
		var arg any
		if err := dec.Decode(&arg); err != nil {
			return fmt.Errorf("spec: directive %q: %w", kind, err)
		}
		out = append(out, Directive{Kind: kind, Arg: arg})
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("spec: directives: %w", err)
	}
	*d = out
	return nil
}

// MarshalJSON renders the directives back as an object in declaration order.
func (d Directives) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, directive := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(directive.Kind)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(directive.Arg)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func yamlKind(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
