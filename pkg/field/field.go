package field

import (
	"github.com/flbulgarelli/formulario/pkg/normalization"
	"github.com/flbulgarelli/formulario/pkg/validation"
)

// Built-in field types.
const (
	TypeText     = "text"
	TypeNumber   = "number"
	TypeTextArea = "text_area"
)

// Field is one typed input inside a form. Fields are assembled by the
// catalog during load and never mutated afterwards; each owns its validation
// and normalization rules exclusively.
type Field interface {
	Name() string
	Type() string
	Required() bool
	Confirm() bool
	Validations() []validation.Rule
	Normalizations() []normalization.Rule
}

// Base carries the attributes shared by every field variant. Extension
// producers receive a fully resolved Base and embed it in their own variant.
type Base struct {
	name           string
	required       bool
	confirm        bool
	validations    []validation.Rule
	normalizations []normalization.Rule
}

// NewBase assembles the shared field attributes.
func NewBase(name string, required, confirm bool, validations []validation.Rule, normalizations []normalization.Rule) Base {
	return Base{
		name:           name,
		required:       required,
		confirm:        confirm,
		validations:    validations,
		normalizations: normalizations,
	}
}

func (b Base) Name() string { return b.name }

func (b Base) Required() bool { return b.required }

// Confirm signals that the field expects a paired confirmation input.
func (b Base) Confirm() bool { return b.confirm }

func (b Base) Validations() []validation.Rule { return b.validations }

func (b Base) Normalizations() []normalization.Rule { return b.normalizations }

// Text is a single-line text input.
type Text struct {
	Base
}

func (Text) Type() string { return TypeText }

// Number is a numeric input.
type Number struct {
	Base
}

func (Number) Type() string { return TypeNumber }

// TextArea is a multi-line text input.
type TextArea struct {
	Base
}

func (TextArea) Type() string { return TypeTextArea }
