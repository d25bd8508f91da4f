// Package formulario loads declarative form specs into typed Form values:
// ordered fields with resolved validation and normalization rules, built
// through open catalogs that callers can extend with their own field types
// and rule kinds.
package formulario

import (
	"github.com/flbulgarelli/formulario/pkg/form"
	"github.com/flbulgarelli/formulario/pkg/loader"
	"github.com/flbulgarelli/formulario/pkg/spec"
)

// New constructs a Loader wired with fresh default catalogs. Register
// extensions through its FieldCatalog before loading.
func New(options ...loader.Option) *loader.Loader {
	return loader.New(options...)
}

// Load converts an already-parsed nested mapping into a Form using default
// catalogs.
func Load(raw map[string]any) (*form.Form, error) {
	parsed, err := spec.FromMap(raw)
	if err != nil {
		return nil, err
	}
	return loader.New().Load(parsed)
}

// LoadYAML decodes a YAML form spec document and loads it using default
// catalogs.
func LoadYAML(data []byte) (*form.Form, error) {
	parsed, err := spec.ParseYAML(data)
	if err != nil {
		return nil, err
	}
	return loader.New().Load(parsed)
}

// LoadJSON decodes a JSON form spec document and loads it using default
// catalogs.
func LoadJSON(data []byte) (*form.Form, error) {
	parsed, err := spec.ParseJSON(data)
	if err != nil {
		return nil, err
	}
	return loader.New().Load(parsed)
}
