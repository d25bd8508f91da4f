package validation

import "regexp"

// Built-in validation kinds.
const (
	KindRegexp   = "regexp"
	KindUnique   = "unique"
	KindNonBlank = "nonblank"
	KindExec     = "exec"
)

// Rule describes a constraint a submitted value must satisfy. Rules are
// resolved once at load time and are immutable afterwards; running them
// against answers is left to callers, which can type-switch on the concrete
// variants to reach kind-specific data.
type Rule interface {
	Kind() string
}

// Regexp requires values to match a compiled pattern.
type Regexp struct {
	Pattern *regexp.Regexp
}

func (Regexp) Kind() string { return KindRegexp }

// Unique marks a field whose values must be unique across answers. The check
// itself is cross-answer and happens outside the core.
type Unique struct{}

func (Unique) Kind() string { return KindUnique }

// NonBlank marks a field that rejects blank values.
type NonBlank struct{}

func (NonBlank) Kind() string { return KindNonBlank }

// Exec carries an externally-defined command as opaque data. The core never
// runs it.
type Exec struct {
	Command string
}

func (Exec) Kind() string { return KindExec }
