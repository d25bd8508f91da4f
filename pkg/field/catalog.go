package field

import (
	"errors"
	"fmt"
	"strings"

	"github.com/flbulgarelli/formulario/pkg/normalization"
	"github.com/flbulgarelli/formulario/pkg/registry"
	"github.com/flbulgarelli/formulario/pkg/spec"
	"github.com/flbulgarelli/formulario/pkg/validation"
)

// ErrMissingFieldName reports a field spec without a name. The name check is
// unconditional: it fires even when the declared type would not resolve.
var ErrMissingFieldName = errors.New("field: missing field name")

// UnsupportedTypeError reports a field type that is neither built in nor
// registered.
type UnsupportedTypeError struct {
	Type string
}

func (e UnsupportedTypeError) Error() string {
	return fmt.Sprintf("field: unsupported field type %q", e.Type)
}

// Producer builds a field variant from the fully resolved shared attributes.
// Registered producers run after the built-in types have been checked; their
// failures propagate to the caller untouched.
type Producer func(base Base) (Field, error)

// Catalog resolves field specs to concrete fields, mapping each validation
// and normalization directive through the respective catalog on the way.
type Catalog struct {
	validations    *validation.Catalog
	normalizations *normalization.Catalog
	extensions     *registry.Registry[Producer]
}

// NewCatalog creates a field catalog over the given rule catalogs.
func NewCatalog(validations *validation.Catalog, normalizations *normalization.Catalog) *Catalog {
	return &Catalog{
		validations:    validations,
		normalizations: normalizations,
		extensions:     registry.New[Producer](),
	}
}

// Register makes producer available under the given field type for
// subsequent Load calls.
func (c *Catalog) Register(fieldType string, producer Producer) {
	c.extensions.Register(fieldType, producer)
}

// Unregister removes the extension registered under fieldType.
func (c *Catalog) Unregister(fieldType string) {
	c.extensions.Unregister(fieldType)
}

// Extensions exposes the catalog's registry for introspection.
func (c *Catalog) Extensions() *registry.Registry[Producer] {
	return c.extensions
}

// Validations returns the validation catalog directives resolve through.
func (c *Catalog) Validations() *validation.Catalog { return c.validations }

// Normalizations returns the normalization catalog directives resolve
// through.
func (c *Catalog) Normalizations() *normalization.Catalog { return c.normalizations }

// Load resolves a field spec into a concrete field: built-in types first,
// then the open registry. Directives keep their declaration order.
func (c *Catalog) Load(fieldSpec spec.FieldSpec) (Field, error) {
	name := strings.TrimSpace(fieldSpec.Name)
	if name == "" {
		return nil, ErrMissingFieldName
	}

	validations, err := c.parseValidations(fieldSpec.Validate)
	if err != nil {
		return nil, err
	}
	normalizations, err := c.parseNormalizations(fieldSpec.Normalize)
	if err != nil {
		return nil, err
	}

	base := NewBase(name, fieldSpec.Required, fieldSpec.Confirm, validations, normalizations)

	switch fieldSpec.Type {
	case TypeText:
		return Text{Base: base}, nil
	case TypeNumber:
		return Number{Base: base}, nil
	case TypeTextArea:
		return TextArea{Base: base}, nil
	}
	if producer, ok := c.extensions.Lookup(fieldSpec.Type); ok {
		return producer(base)
	}
	return nil, UnsupportedTypeError{Type: fieldSpec.Type}
}

func (c *Catalog) parseValidations(directives spec.Directives) ([]validation.Rule, error) {
	if len(directives) == 0 {
		return nil, nil
	}
	rules := make([]validation.Rule, 0, len(directives))
	for _, directive := range directives {
		rule, err := c.validations.Parse(directive.Kind, directive.Arg)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func (c *Catalog) parseNormalizations(directives spec.Directives) ([]normalization.Rule, error) {
	if len(directives) == 0 {
		return nil, nil
	}
	rules := make([]normalization.Rule, 0, len(directives))
	for _, directive := range directives {
		rule, err := c.normalizations.Parse(directive.Kind, directive.Arg)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
