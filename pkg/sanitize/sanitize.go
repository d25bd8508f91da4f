// Package sanitize is a ready-made normalization extension that strips HTML
// markup from submitted values. It doubles as the in-tree example of the
// catalog registration contract: Attach before loading, Detach when done.
package sanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/flbulgarelli/formulario/pkg/normalization"
)

// Kind is the directive kind the package registers under.
const Kind = "sanitize"

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

func markupPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.StrictPolicy()
	})
	return policy
}

// Rule strips all HTML elements and attributes from the value, trimming the
// whitespace the removal leaves behind.
type Rule struct{}

func (Rule) Kind() string { return Kind }

func (Rule) Apply(value string) string {
	return strings.TrimSpace(markupPolicy().Sanitize(value))
}

// Attach registers the rule with the catalog under Kind. The directive
// argument is ignored.
func Attach(catalog *normalization.Catalog) {
	catalog.Register(Kind, func(any) (normalization.Rule, error) {
		return Rule{}, nil
	})
}

// Detach removes the registration installed by Attach.
func Detach(catalog *normalization.Catalog) {
	catalog.Unregister(Kind)
}
