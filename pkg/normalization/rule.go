package normalization

import "strings"

// Built-in normalization kinds.
const (
	KindDowncase = "downcase"
	KindTrim     = "trim"
	KindSqueeze  = "squeeze"
	KindExec     = "exec"
)

// Rule transforms a submitted value before validation and storage. Rules
// compose: the output of one feeds the next, in the order they were declared
// on the field.
type Rule interface {
	Kind() string
	Apply(value string) string
}

// Downcase lowercases the value.
type Downcase struct{}

func (Downcase) Kind() string { return KindDowncase }

func (Downcase) Apply(value string) string { return strings.ToLower(value) }

// Trim removes surrounding whitespace.
type Trim struct{}

func (Trim) Kind() string { return KindTrim }

func (Trim) Apply(value string) string { return strings.TrimSpace(value) }

// Squeeze collapses every run of identical characters to a single one.
type Squeeze struct{}

func (Squeeze) Kind() string { return KindSqueeze }

func (Squeeze) Apply(value string) string {
	var builder strings.Builder
	builder.Grow(len(value))
	var last rune
	first := true
	for _, r := range value {
		if !first && r == last {
			continue
		}
		builder.WriteRune(r)
		last = r
		first = false
	}
	return builder.String()
}

// Exec carries an externally-defined command as opaque data. The core never
// runs it, so Apply returns the value untouched.
type Exec struct {
	Command string
}

func (Exec) Kind() string { return KindExec }

func (Exec) Apply(value string) string { return value }
