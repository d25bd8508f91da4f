package validation

import (
	"fmt"
	"regexp"

	"github.com/flbulgarelli/formulario/pkg/registry"
)

// Producer builds a validation rule from the directive argument. Registered
// producers run after the built-in kinds have been checked; their failures
// propagate to the caller untouched.
type Producer func(arg any) (Rule, error)

// UnsupportedKindError reports a directive kind that is neither built in nor
// registered.
type UnsupportedKindError struct {
	Kind string
}

func (e UnsupportedKindError) Error() string {
	return fmt.Sprintf("validation: unsupported kind %q", e.Kind)
}

// PatternError reports a regexp directive whose pattern source does not
// compile.
type PatternError struct {
	Source string
	Err    error
}

func (e PatternError) Error() string {
	return fmt.Sprintf("validation: malformed pattern %q: %v", e.Source, e.Err)
}

func (e PatternError) Unwrap() error { return e.Err }

// Catalog resolves validation directives to rule instances: built-in kinds
// first, then the open extension registry.
type Catalog struct {
	extensions *registry.Registry[Producer]
}

// NewCatalog creates a catalog with an empty extension registry.
func NewCatalog() *Catalog {
	return &Catalog{extensions: registry.New[Producer]()}
}

// Register makes producer available under kind for subsequent Parse calls.
func (c *Catalog) Register(kind string, producer Producer) {
	c.extensions.Register(kind, producer)
}

// Unregister removes the extension registered under kind.
func (c *Catalog) Unregister(kind string) {
	c.extensions.Unregister(kind)
}

// Extensions exposes the catalog's registry for introspection.
func (c *Catalog) Extensions() *registry.Registry[Producer] {
	return c.extensions
}

// Parse resolves a (kind, argument) directive to a rule. Stateless built-ins
// ignore the argument; regexp and exec are constructed from it.
func (c *Catalog) Parse(kind string, arg any) (Rule, error) {
	switch kind {
	case KindRegexp:
		source := argString(arg)
		pattern, err := regexp.Compile(source)
		if err != nil {
			return nil, PatternError{Source: source, Err: err}
		}
		return Regexp{Pattern: pattern}, nil
	case KindUnique:
		return Unique{}, nil
	case KindNonBlank:
		return NonBlank{}, nil
	case KindExec:
		return Exec{Command: argString(arg)}, nil
	}
	if producer, ok := c.extensions.Lookup(kind); ok {
		return producer(arg)
	}
	return nil, UnsupportedKindError{Kind: kind}
}

func argString(arg any) string {
	switch v := arg.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
